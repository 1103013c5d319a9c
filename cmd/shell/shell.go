package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"

	eqd "github.com/eqlab/eqd/pkg"
)

var url = flag.String("url", "ws://localhost:9000/ws", "URL of eqd server to connect to")

func main() {
	// get cmdline flags
	flag.Parse()

	// connect to server
	client, connErr := eqd.NewClient(*url)
	if connErr != nil {
		fmt.Println("couldn't connect:", connErr)
		os.Exit(1)
		return
	}
	defer client.Close()

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("eqd shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	continuationPrompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", *url)
		continuationPrompt = strings.Repeat(" ", len(*url)) + "| "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.eqd-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		if line == `\h` {
			fmt.Println(`\h	help`)
			fmt.Println(`\d	describe registry`)
			continue
		}
		if line == `\d` { // describe registry
			for _, show := range []string{"show sorts", "show ops", "show axioms", "show lemmas"} {
				runStatement(client, show)
			}
			continue
		}

		if len(strings.Trim(line, "\t ")) == 0 {
			continue
		}

		// a prove statement spans lines until its braces balance
		stmt := line
		for braceDepth(stmt) > 0 {
			l.SetPrompt(continuationPrompt)
			more, readlineErr := l.Readline()
			if readlineErr != nil {
				fmt.Println("bye!")
				os.Exit(0)
			}
			stmt = stmt + "\n" + more
		}
		l.SetPrompt(prompt)

		runStatement(client, stmt)
	}
}

func braceDepth(stmt string) int {
	return strings.Count(stmt, "{") - strings.Count(stmt, "}")
}

func runStatement(client *eqd.Client, stmt string) {
	channel := client.Statement(stmt)
	firstUpdate := <-channel.Updates
	printMessage(channel, firstUpdate)
	// watches keep pushing updates on the same channel
	go handleMessages(channel)
}

func handleMessages(channel *eqd.ClientChannel) {
	for message := range channel.Updates {
		printMessage(channel, message)
	}
}

func printMessage(channel *eqd.ClientChannel, msg *eqd.MessageToClient) {
	fmt.Printf("chan %d: ", channel.StatementID)
	switch msg.Type {
	case eqd.AckMessage:
		fmt.Println("ack", *msg.AckMessage)
	case eqd.ErrorMessage:
		fmt.Println("error", *msg.ErrorMessage)
	case eqd.ResultMessage:
		printJSON("result", msg.ResultMessage)
	case eqd.LemmaUpdateMessage:
		printJSON("lemma_update", msg.LemmaUpdateMessage)
	}
}

func printJSON(tag string, thing interface{}) {
	indented, _ := json.MarshalIndent(thing, "", "  ")
	fmt.Printf("%s:\n%s\n", tag, indented)
}
