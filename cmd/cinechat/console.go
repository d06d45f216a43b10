package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// runConsole runs the interactive chat loop until the input ends or the
// user types "exit". Queries never error out: the handler always answers
// with text.
func runConsole(ctx context.Context, in io.Reader, out io.Writer, handler func(ctx context.Context, query string) string) error {
	fmt.Fprintln(out, "Welcome! You can ask me anything. Type 'exit' to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "exit") {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		fmt.Fprintln(out, "Bot:", handler(ctx, query))
	}
	return scanner.Err()
}
