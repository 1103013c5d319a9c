package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Context keys used to tag log lines with where in the server the
// event happened.
const (
	ConnIDKey = "ConnID"
	StmtIDKey = "StmtID"
)

func ctxToString(ctx context.Context) string {
	var tags []string
	if connID := ctx.Value(ConnIDKey); connID != nil {
		tags = append(tags, fmt.Sprintf("conn=%d", connID))
	}
	if stmtID := ctx.Value(StmtIDKey); stmtID != nil {
		tags = append(tags, fmt.Sprintf("stmt=%d", stmtID))
	}
	return fmt.Sprintf("[%s]", strings.Join(tags, ","))
}

type Loggable interface {
	Ctx() context.Context
}

func Println(l Loggable, args ...interface{}) {
	allArgs := make([]interface{}, 0, len(args)+1)
	allArgs = append(allArgs, ctxToString(l.Ctx()))
	allArgs = append(allArgs, args...)
	log.Println(allArgs...)
}

func Printf(l Loggable, format string, args ...interface{}) {
	log.Printf("%s %s", ctxToString(l.Ctx()), fmt.Sprintf(format, args...))
}
