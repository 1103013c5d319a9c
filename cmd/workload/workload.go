package main

import (
	"flag"
	"fmt"
	"log"

	eqd "github.com/eqlab/eqd/pkg"
)

var load = flag.Bool("load", false, "declare the group signature and axioms")
var url = flag.String("url", "ws://localhost:9000/ws", "url of eqd server to connect to")
var numWatchers = flag.Int("numWatchers", 5, "number of lemma watches to open")
var numLemmas = flag.Int("numLemmas", 10000000000, "number of lemmas to prove")

var signatureStmts = []string{
	`sort G`,
	`op mul(G, G): G`,
	`op inv(G): G`,
	`op e(): G`,
	`axiom assoc: mul(mul(x, y), z) = mul(x, mul(y, z))`,
	`axiom left_identity: mul(e(), x) = x`,
	`axiom left_inverse: mul(inv(x), x) = e()`,
}

const proveRightInverse = `prove right_inverse: mul(a, inv(a)) = e() {
  mul(a, inv(a))
  = mul(e(), mul(a, inv(a))) by left_identity rl
  = mul(mul(inv(inv(a)), inv(a)), mul(a, inv(a))) by left_inverse rl at [0] with x = inv(a)
  = mul(inv(inv(a)), mul(inv(a), mul(a, inv(a)))) by assoc
  = mul(inv(inv(a)), mul(mul(inv(a), a), inv(a))) by assoc rl at [1]
  = mul(inv(inv(a)), mul(e(), inv(a))) by left_inverse at [1, 0]
  = mul(inv(inv(a)), inv(a)) by left_identity at [1]
  = e() by left_inverse
}`

func main() {
	flag.Parse()

	client, err := eqd.NewClient(*url)
	if err != nil {
		log.Fatal(err)
	}

	// Declare signature, axioms, and the base lemma.
	if *load {
		log.Println("declaring group signature")
		for _, stmt := range signatureStmts {
			log.Println(stmt)
			if _, err := client.Exec(stmt); err != nil {
				log.Fatal(err)
			}
		}
		if _, err := client.Exec(proveRightInverse); err != nil {
			log.Fatal(err)
		}
	}

	// Open lemma watches.
	log.Println("opening lemma watches")
	for i := 0; i < *numWatchers; i++ {
		_, channel, err := client.Watch("watch lemmas")
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			for {
				<-channel.Updates
			}
		}()
	}

	// Prove one-step lemmas citing right_inverse, each over a fresh
	// variable.
	log.Println("proving lemmas")
	for i := 0; i < *numLemmas; i++ {
		stmt := fmt.Sprintf(
			`prove right_inverse_%d: mul(x%d, inv(x%d)) = e() {
  mul(x%d, inv(x%d))
  = e() by right_inverse
}`,
			i, i, i, i, i,
		)
		if _, err := client.Exec(stmt); err != nil {
			log.Fatal(err)
		}
		if i%500 == 0 {
			log.Println("lemma count:", i)
		}
	}
}
