// Command chat is a terminal client for the portfolio chat endpoint.
// It keeps the conversation in memory and renders the streamed answer
// incrementally as chunks arrive.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio-backend/internal/chatclient"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/chat", "chat endpoint URL")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := chatclient.New(*endpoint)
	client.OnChunk = func(messageID, chunk string) {
		fmt.Print(chunk)
	}

	fmt.Println("Portfolio chat. Ask about Miliyon's background, skills, or projects. Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			break
		}

		fmt.Print("\nassistant> ")
		err := client.Submit(ctx, scanner.Text())
		switch {
		case errors.Is(err, chatclient.ErrEmptyInput):
			continue
		case err != nil:
			fmt.Fprintln(os.Stderr, "\nSomething went wrong. Please try again.")
			if ctx.Err() != nil {
				return
			}
		default:
			fmt.Println()
		}
	}
}
