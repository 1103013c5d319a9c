package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	eqd "github.com/eqlab/eqd/pkg"
)

var url = flag.String("url", "ws://localhost:9000/ws", "url of eqd server to connect to")
var scriptPath = flag.String("script", "", "statement script to run (defaults to stdin)")

// check runs a statement script against a server and exits nonzero on
// the first statement the server rejects. Statements are one per line;
// a prove block runs until its braces balance.
func main() {
	flag.Parse()

	input := os.Stdin
	if *scriptPath != "" {
		file, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		input = file
	}

	client, err := eqd.NewClient(*url)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	failures := 0
	scanner := bufio.NewScanner(input)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		stmt := line
		stmtLine := lineNo
		for braceDepth(stmt) > 0 && scanner.Scan() {
			lineNo++
			stmt = stmt + "\n" + scanner.Text()
		}
		if braceDepth(stmt) > 0 {
			log.Fatalf("line %d: unclosed brace at end of script", stmtLine)
		}

		if strings.HasPrefix(strings.ToLower(trimmed), "show") {
			result, err := client.Query(stmt)
			if err != nil {
				failures++
				fmt.Printf("line %d: FAIL %s\n", stmtLine, err)
				continue
			}
			fmt.Printf("line %d: ok %v\n", stmtLine, result)
			continue
		}

		ack, err := client.Exec(stmt)
		if err != nil {
			failures++
			fmt.Printf("line %d: FAIL %s\n", stmtLine, err)
			continue
		}
		fmt.Printf("line %d: ok %s\n", stmtLine, ack)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	if failures > 0 {
		fmt.Printf("%d statement(s) failed\n", failures)
		os.Exit(1)
	}
}

func braceDepth(stmt string) int {
	return strings.Count(stmt, "{") - strings.Count(stmt, "}")
}
