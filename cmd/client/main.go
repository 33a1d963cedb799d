// Command client is a small terminal chat client against the pingr backend.
// It logs in over REST, opens the realtime socket and drops into a line
// based prompt: type to send, /chats to list chats, /open N to switch.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/api"
	"github.com/pingr-im/pingr-go/internal/client/chatapi"
	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/model"
	"github.com/pingr-im/pingr-go/internal/pkg/token"
	"github.com/pingr-im/pingr-go/internal/session"
	"github.com/pingr-im/pingr-go/internal/socket"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdin := bufio.NewScanner(os.Stdin)
	apiClient := chatapi.New(cfg)

	if cfg.Auth.Token == "" {
		authResult, err := login(ctx, apiClient, stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
			os.Exit(1)
		}
		cfg.Auth.Token = authResult.Token
	}
	apiClient.SetToken(cfg.Auth.Token)

	user, err := token.Identity(cfg.Auth.Token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)

	sock := socket.New(cfg, logger)
	sock.Connect(ctx)
	defer sock.Close()

	sess := session.New(sock, apiClient, user.ID, logger)
	defer sess.Close()

	sess.OnUpdate(func() {
		printLatest(sess, user.ID)
	})
	sess.OnSendFailure(func(userMsg string) {
		fmt.Printf("\n! %s\n> ", userMsg)
	})

	chats, err := apiClient.FetchChats(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch chats: %v\n", err)
		os.Exit(1)
	}
	printChats(chats, user.ID)

	fmt.Print("> ")
	for stdin.Scan() {
		line := strings.TrimSpace(stdin.Text())
		switch {
		case line == "":
		case line == "/quit":
			return
		case line == "/chats":
			chats, err = apiClient.FetchChats(ctx)
			if err != nil {
				fmt.Printf("failed to fetch chats: %v\n", err)
				break
			}
			printChats(chats, user.ID)
		case strings.HasPrefix(line, "/open "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/open ")))
			if err != nil || n < 1 || n > len(chats) {
				fmt.Println("usage: /open N (see /chats)")
				break
			}
			chat := chats[n-1]
			sess.EnterChat(ctx, chat.ID)
			fmt.Printf("-- %s --\n", chat.DisplayName(user.ID))
		default:
			sess.NotifyLocalTyping()
			if err := sess.SendLocalMessage(ctx, line, ""); err != nil {
				fmt.Printf("cannot send: %v\n", err)
			}
		}
		fmt.Print("> ")
	}
}

func login(ctx context.Context, apiClient *chatapi.Client, stdin *bufio.Scanner) (*api.AuthResult, error) {
	fmt.Print("email: ")
	if !stdin.Scan() {
		return nil, fmt.Errorf("no input")
	}
	email := strings.TrimSpace(stdin.Text())

	fmt.Print("password: ")
	if !stdin.Scan() {
		return nil, fmt.Errorf("no input")
	}
	password := stdin.Text()

	return apiClient.Login(ctx, email, password)
}

func printChats(chats model.ChatList, userID string) {
	fmt.Println("chats:")
	for i, chat := range chats {
		fmt.Printf("  %d. %s\n", i+1, chat.DisplayName(userID))
	}
}

func printLatest(sess *session.Session, userID string) {
	messages := sess.Messages()
	if len(messages) == 0 {
		return
	}

	msg := messages[0]
	who := msg.Sender.Name
	if msg.IsMine(userID) {
		who = "me"
		if !msg.Confirmed() {
			who = "me (sending)"
		}
	}
	fmt.Printf("\n[%s] %s: %s\n> ", msg.CreatedAt.Format("15:04"), who, msg.Content)

	if sess.IsTyping() {
		fmt.Print("(typing...) ")
	}
}
