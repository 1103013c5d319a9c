package eqd

import (
	"testing"
)

// TestRestart tests that the signature, axioms, and lemmas survive a
// process restart, and that reloaded lemmas are citable.
func TestRestart(t *testing.T) {
	// Declare, prove, shut down.
	ts, client, err := NewTestServer(testServerArgs{preserveWhenDone: true})
	if err != nil {
		t.Fatal(err)
	}
	declareGroup(t, client)
	if _, err := client.Exec(proveRightInverse); err != nil {
		t.Fatal(err)
	}
	ts.close()

	// Start 'er back up again and see if the registry is still there.
	ts2, client2, err := NewTestServer(testServerArgs{dataFilePath: ts.dataFilePath})
	if err != nil {
		t.Fatalf("error restarting: %v", err)
	}
	defer ts2.close()

	// Axioms were reloaded: their names are taken.
	_, err = client2.Exec("axiom assoc: mul(mul(x, y), z) = mul(x, mul(y, z))")
	if err == nil {
		t.Fatal("expected reloaded axiom to conflict")
	}
	expected := "validation error: axiom or lemma already declared: assoc"
	if err.Error() != expected {
		t.Fatalf(`expected error "%s"; got "%s"`, expected, err.Error())
	}

	// The reloaded lemma was re-verified and is citable.
	ack, err := client2.Exec(proveRightIdentity)
	if err != nil {
		t.Fatal(err)
	}
	if ack != "PROVE right_identity (4 steps)" {
		t.Fatalf("unexpected ack: %s", ack)
	}
}
