package eqd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/phayes/freeport"

	"github.com/eqlab/eqd/pkg/util"
)

type testServerArgs struct {
	dataFilePath     string
	preserveWhenDone bool
}

type testServerRef struct {
	server       *Server
	client       *Client
	dataFilePath string
	preserve     bool
}

func (tsr *testServerRef) close() {
	tsr.client.Close()
	tsr.server.Close()
	if !tsr.preserve {
		os.Remove(tsr.dataFilePath)
	}
}

func NewTestServer(args testServerArgs) (*testServerRef, *Client, error) {
	dataFilePath := args.dataFilePath
	if dataFilePath == "" {
		dir, err := ioutil.TempDir("", "eqd-test")
		if err != nil {
			return nil, nil, err
		}
		dataFilePath = dir + "/test.data"
	}

	port := freeport.GetPort()

	server := NewServer(dataFilePath, "localhost", port)
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	url := fmt.Sprintf("ws://localhost:%d/ws", port)
	var client *Client
	var err error
	for attempt := 0; attempt < 50; attempt++ {
		client, err = NewClient(url)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		return nil, nil, err
	}

	return &testServerRef{
		server:       server,
		client:       client,
		dataFilePath: dataFilePath,
		preserve:     args.preserveWhenDone,
	}, client, nil
}

// define stmt => define error or ack
// define query => define error or result
type simpleTestStmt struct {
	stmt  string
	query string

	ack    string
	error  string
	result string
}

// runSimpleTestScript spins up a test server and runs statements on it,
// checking each result. It doesn't support watches; only one-shot
// statements are checked.
func runSimpleTestScript(t *testing.T, cases []simpleTestStmt) *testServerRef {
	tsr, client, err := NewTestServer(testServerArgs{})
	if err != nil {
		t.Fatal(err)
	}

	for idx, testCase := range cases {
		// Run a statement.
		if testCase.stmt != "" {
			result, err := client.Exec(testCase.stmt)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			if result != testCase.ack {
				t.Fatalf(`case %d: expected ack "%s"; got "%s"`, idx, testCase.ack, result)
			}
			continue
		}
		// Run a query.
		if testCase.query != "" {
			res, err := client.Query(testCase.query)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			actual, _ := json.Marshal(res)
			same, err := util.AreEqualJSON(string(actual), testCase.result)
			if err != nil {
				t.Fatalf("case %d: %v", idx, err)
			}
			if !same {
				t.Fatalf("case %d: expected:\n%s\ngot:\n%s", idx, testCase.result, actual)
			}
		}
	}

	return tsr
}
