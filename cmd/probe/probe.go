// probe sends a single request to a running server and prints the
// status line, headers and body it gets back.
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"fileserver/response"
)

// probe writes one request head on `conn` and reads until the
// server closes the connection.
func probe(conn io.ReadWriter, method, target, host string) (string, []byte, error) {
	if _, err := fmt.Fprintf(conn, "%s %s HTTP/1.1\r\nHost: %s\r\n\r\n", method, target, host); err != nil {
		return "", nil, err
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		return "", nil, err
	}
	sl, hl, body, err := response.Split(data)
	if err != nil {
		return "", nil, err
	}
	return sl + "\r\n" + hl.String(), body, nil
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "server address")
	method := flag.String("method", "GET", "request method")
	timeout := flag.Duration("timeout", 5*time.Second, "dial and read timeout")
	flag.Parse()

	target := "/"
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(*timeout))

	head, body, err := probe(conn, *method, target, *addr)
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
	fmt.Print(head)
	fmt.Println()
	os.Stdout.Write(body)
}
