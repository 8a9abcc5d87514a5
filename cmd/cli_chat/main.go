package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"english-tutor/internal/config"
	"english-tutor/internal/content"
	"english-tutor/internal/domain"
	"english-tutor/internal/plan"
	"english-tutor/internal/service"
)

var (
	tutorColor = color.New(color.FgCyan)
	userColor  = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	table := content.Default()
	if cfg.ContentFile != "" {
		if table, err = content.LoadFile(cfg.ContentFile); err != nil {
			log.Fatal(err)
		}
	}

	initial := ""
	if len(os.Args) > 1 {
		initial = os.Args[1]
	}

	conv := service.NewConversation(service.NewResponder(table), plan.Resolve(initial), service.ConversationOptions{
		Delay:  cfg.ReplyDelay,
		Logger: logger,
	})
	transcripts := service.NewTranscriptService(cfg.TranscriptLimit)

	chatLoop(bufio.NewReader(os.Stdin), conv, transcripts)
}

func chatLoop(reader *bufio.Reader, conv *service.Conversation, transcripts *service.TranscriptService) {
	printHeader(conv.View())
	for {
		userColor.Print("Bạn > ")
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			errColor.Printf("✗ leer input: %v\n", err)
			return
		}
		eof := err == io.EOF
		text = strings.TrimSpace(text)

		switch {
		case text == "":
		case text == "/quit" || text == "/exit":
			fmt.Println("Tạm biệt!")
			return
		case text == "/clear":
			conv.Clear()
			printHeader(conv.View())
		case text == "/history":
			fmt.Println(transcripts.Render(conv.View().Messages))
		case strings.HasPrefix(text, "/plan"):
			key := strings.TrimSpace(strings.TrimPrefix(text, "/plan"))
			if conv.SelectPlan(plan.Resolve(key)) {
				printHeader(conv.View())
			} else {
				warnColor.Printf("ℹ Bạn đang dùng gói %s\n", conv.Plan().Label)
			}
		default:
			send(conv, text)
		}

		if eof {
			return
		}
	}
}

func send(conv *service.Conversation, text string) {
	_, reply, err := conv.Submit(text)
	if err != nil {
		if notice, ok := service.QuotaMessage(err); ok {
			warnColor.Printf("ℹ %s\n", notice)
			return
		}
		errColor.Printf("✗ %v\n", err)
		return
	}
	msg, ok := <-reply
	if !ok {
		return
	}
	tutorColor.Printf("Tutor > %s\n", msg.Content)
	if view := conv.View(); view.ChatsLeft != nil {
		warnColor.Printf("ℹ Còn %d lượt chat hôm nay\n", *view.ChatsLeft)
	}
}

func printHeader(view service.ConversationView) {
	p := view.Plan
	header := color.New(color.FgMagenta, color.Bold)
	if p.Key == domain.PlanPremium {
		header = color.New(color.FgYellow, color.Bold)
	}
	header.Printf("\n===== %s %s%s =====\n", p.Label, p.Price, p.Cadence)
	fmt.Println("Lệnh: /plan basic|premium, /clear, /history, /quit")
	for _, m := range view.Messages {
		tutorColor.Printf("Tutor > %s\n", m.Content)
	}
}
