package eqd

import (
	"testing"
)

// the group signature and axioms, as wire statements
var groupStmts = []string{
	"sort G",
	"op mul(G, G): G",
	"op inv(G): G",
	"op e(): G",
	"axiom assoc: mul(mul(x, y), z) = mul(x, mul(y, z))",
	"axiom left_identity: mul(e(), x) = x",
	"axiom left_inverse: mul(inv(x), x) = e()",
}

var proveRightInverse = `prove right_inverse: mul(a, inv(a)) = e() {
  mul(a, inv(a))
  = mul(e(), mul(a, inv(a))) by left_identity rl
  = mul(mul(inv(inv(a)), inv(a)), mul(a, inv(a))) by left_inverse rl at [0] with x = inv(a)
  = mul(inv(inv(a)), mul(inv(a), mul(a, inv(a)))) by assoc
  = mul(inv(inv(a)), mul(mul(inv(a), a), inv(a))) by assoc rl at [1]
  = mul(inv(inv(a)), mul(e(), inv(a))) by left_inverse at [1, 0]
  = mul(inv(inv(a)), inv(a)) by left_identity at [1]
  = e() by left_inverse
}`

var proveRightIdentity = `prove right_identity: mul(a, e()) = a {
  mul(a, e())
  = mul(a, mul(inv(a), a)) by left_inverse rl at [1] with x = a
  = mul(mul(a, inv(a)), a) by assoc rl
  = mul(e(), a) by right_inverse at [0]
  = a by left_identity
}`

var proveIdentityUnique = `prove identity_unique: e2() = e() {
  e2()
  = mul(e2(), e()) by right_identity rl
  = e() by left_identity_e2
}`

func declareGroup(t *testing.T, client *Client) {
	t.Helper()
	for _, stmt := range groupStmts {
		if _, err := client.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}
}

// TestProveGroupTheorems runs the whole worked example over the wire:
// right inverse from the axioms, right identity from right inverse,
// then uniqueness of identity against a fresh constant e2.
func TestProveGroupTheorems(t *testing.T) {
	tsr := runSimpleTestScript(t, []simpleTestStmt{
		{stmt: "sort G", ack: "SORT G"},
		{stmt: "op mul(G, G): G", ack: "OP mul"},
		{stmt: "op inv(G): G", ack: "OP inv"},
		{stmt: "op e(): G", ack: "OP e"},
		{stmt: "axiom assoc: mul(mul(x, y), z) = mul(x, mul(y, z))", ack: "AXIOM assoc"},
		{stmt: "axiom left_identity: mul(e(), x) = x", ack: "AXIOM left_identity"},
		{stmt: "axiom left_inverse: mul(inv(x), x) = e()", ack: "AXIOM left_inverse"},
		{
			stmt: proveRightInverse,
			ack:  "PROVE right_inverse (7 steps)",
		},
		{
			stmt: proveRightIdentity,
			ack:  "PROVE right_identity (4 steps)",
		},
		// Uniqueness of identity needs its hypothesis as an axiom over
		// a fresh constant.
		{stmt: "op e2(): G", ack: "OP e2"},
		{stmt: "axiom left_identity_e2: mul(e2(), x) = x", ack: "AXIOM left_identity_e2"},
		{
			stmt: proveIdentityUnique,
			ack:  "PROVE identity_unique (2 steps)",
		},
		// An admitted lemma is citable like an axiom: the same goal
		// shape over a fresh variable now takes one step.
		{
			stmt: `prove right_inverse_b: mul(b, inv(b)) = e() {
  mul(b, inv(b))
  = e() by right_inverse
}`,
			ack: "PROVE right_inverse_b (1 steps)",
		},
		{
			query: "show lemmas",
			result: `[
				{"name": "right_inverse", "equation": "mul(a, inv(a)) = e()", "steps": 7},
				{"name": "right_identity", "equation": "mul(a, e()) = a", "steps": 4},
				{"name": "identity_unique", "equation": "e2() = e()", "steps": 2},
				{"name": "right_inverse_b", "equation": "mul(b, inv(b)) = e()", "steps": 1}
			]`,
		},
	})
	tsr.close()
}

func TestProveFailures(t *testing.T) {
	tsr := runSimpleTestScript(t, []simpleTestStmt{
		{stmt: "sort G", ack: "SORT G"},
		{stmt: "op mul(G, G): G", ack: "OP mul"},
		{stmt: "op inv(G): G", ack: "OP inv"},
		{stmt: "op e(): G", ack: "OP e"},
		{stmt: "axiom left_identity: mul(e(), x) = x", ack: "AXIOM left_identity"},
		// Citing a rule that isn't in the registry.
		{
			stmt: `prove nope: mul(e(), a) = a {
  mul(e(), a)
  = a by bogus
}`,
			error: "derivation error: step 0: no such axiom or lemma: bogus",
		},
		// Recording a result the rewrite doesn't produce.
		{
			stmt: `prove nope: mul(e(), a) = a {
  mul(e(), a)
  = e() by left_identity
}`,
			error: "derivation error: step 0: rewrite produced a; chain records e()",
		},
		// A chain that ends somewhere other than the goal.
		{
			stmt: `prove nope: mul(e(), a) = e() {
  mul(e(), a)
}`,
			error: "derivation error: goal not reached: chain runs from mul(e(), a) to mul(e(), a); goal is mul(e(), a) = e()",
		},
		// A failed prove leaves the registry untouched: the name is
		// still free.
		{
			query:  "show lemmas",
			result: `[]`,
		},
		{
			stmt: `prove fine: mul(e(), a) = a {
  mul(e(), a)
  = a by left_identity
}`,
			ack: "PROVE fine (1 steps)",
		},
	})
	tsr.close()
}
