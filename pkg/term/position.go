package term

import (
	"fmt"
	"strconv"
	"strings"
)

// A Position addresses a subterm as a path of child indices from the
// root. The empty position is the root itself.
type Position []int

func (p Position) String() string {
	parts := make([]string, len(p))
	for idx, i := range p {
		parts[idx] = strconv.Itoa(i)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

type PositionOutOfBounds struct {
	Term Term
	Pos  Position
}

func (e *PositionOutOfBounds) Error() string {
	return fmt.Sprintf("position %s does not address a subterm of %s", e.Pos, e.Term.Format())
}

// At returns the subterm of t addressed by pos.
func At(t Term, pos Position) (Term, error) {
	cur := t
	for _, idx := range pos {
		app, ok := cur.(*TApp)
		if !ok || idx < 0 || idx >= len(app.args) {
			return nil, &PositionOutOfBounds{Term: t, Pos: pos}
		}
		cur = app.args[idx]
	}
	return cur, nil
}

// Replace returns a copy of t with the subterm at pos replaced by
// repl, sharing every untouched subtree with t.
func Replace(t Term, pos Position, repl Term) (Term, error) {
	if len(pos) == 0 {
		return repl, nil
	}
	app, ok := t.(*TApp)
	if !ok || pos[0] < 0 || pos[0] >= len(app.args) {
		return nil, &PositionOutOfBounds{Term: t, Pos: pos}
	}
	newArgs := make([]Term, len(app.args))
	copy(newArgs, app.args)
	newChild, err := Replace(app.args[pos[0]], pos[1:], repl)
	if err != nil {
		// report the full position, not the tail we recursed on
		return nil, &PositionOutOfBounds{Term: t, Pos: pos}
	}
	newArgs[pos[0]] = newChild
	return NewApp(app.op, newArgs...), nil
}
