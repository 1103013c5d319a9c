package parse

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	eqdLexer = lexer.Upper(
		lexer.Must(
			lexer.Regexp(`(\s+)`+
				`|(?P<Keyword>(?i)(SORTS|SORT|OPS|OP|AXIOMS|AXIOM|LEMMAS|PROVE|SHOW|WATCH|BY|AT|WITH|LR|RL)\b)`+
				`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
				`|(?P<Number>\d+)`+
				`|(?P<Operators>[-,.()\[\]{}=:])`,
			),
		),
		"Keyword",
	)
	eqdParser = participle.MustBuild(&Statement{}, eqdLexer)
)

type Statement struct {
	DeclareSort  *DeclareSort  `  @@`
	DeclareOp    *DeclareOp    `| @@`
	DeclareAxiom *DeclareAxiom `| @@`
	Prove        *Prove        `| @@`
	Show         *Show         `| @@`
	Watch        *Watch        `| @@`
}

type DeclareSort struct {
	Name string `"SORT" @Ident`
}

type DeclareOp struct {
	Name   string   `"OP" @Ident`
	Args   []string `"(" [ @Ident { "," @Ident } ] ")"`
	Result string   `":" @Ident`
}

type DeclareAxiom struct {
	Name string `"AXIOM" @Ident ":"`
	LHS  *Term  `@@ "="`
	RHS  *Term  `@@`
}

// A Term is an identifier, optionally applied to arguments. A bare
// identifier is a variable; parens, even empty ones, make it an
// operation application (so `e()` is a constant and `e` a variable).
type Term struct {
	Name string    `@Ident`
	App  *TermArgs `[ @@ ]`
}

type TermArgs struct {
	Args []*Term `"(" [ @@ { "," @@ } ] ")"`
}

type Prove struct {
	Name  string       `"PROVE" @Ident ":"`
	LHS   *Term        `@@ "="`
	RHS   *Term        `@@`
	Start *Term        `"{" @@`
	Steps []*ProofStep `{ @@ } "}"`
}

type ProofStep struct {
	Result *Term      `"=" @@`
	Rule   string     `"BY" @Ident`
	LR     bool       `[ @"LR"`
	RL     bool       `| @"RL" ]`
	At     *StepPos   `[ "AT" @@ ]`
	With   []*Binding `[ "WITH" @@ { "," @@ } ]`
}

type StepPos struct {
	Indices []string `"[" [ @Number { "," @Number } ] "]"`
}

type Binding struct {
	Var string `@Ident "="`
	Val *Term  `@@`
}

type Show struct {
	Sorts  bool `"SHOW" ( @"SORTS"`
	Ops    bool `| @"OPS"`
	Axioms bool `| @"AXIOMS"`
	Lemmas bool `| @"LEMMAS" )`
}

// What names the registry section being shown.
func (n *Show) What() string {
	switch {
	case n.Sorts:
		return "sorts"
	case n.Ops:
		return "ops"
	case n.Axioms:
		return "axioms"
	}
	return "lemmas"
}

type Watch struct {
	Lemmas bool `"WATCH" @"LEMMAS"`
}

// Parse parses one statement of the derivation language.
func Parse(input string) (*Statement, error) {
	result := &Statement{}
	err := eqdParser.ParseString(input, result)
	return result, err
}
