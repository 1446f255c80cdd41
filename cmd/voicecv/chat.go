package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/chat"
	"github.com/rohan/voicecv-cli/internal/config"
	"github.com/rohan/voicecv-cli/internal/voiceio"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive CV-building conversation",
	Long: "Start a conversational agent session. Type answers to the agent's " +
		"questions; use /listen to dictate a reply, /voice on|off to toggle " +
		"spoken replies, /generate to build the CV document, and /quit to leave.",
	RunE: runChat,
}

var (
	chatVoice     bool
	chatSayCmd    string
	chatListenCmd string
	chatOutDir    string
)

func init() {
	chatCmd.Flags().BoolVar(&chatVoice, "voice", false, "Speak agent replies aloud")
	chatCmd.Flags().StringVar(&chatSayCmd, "say-cmd", "", "Text-to-speech command, e.g. 'espeak {}' (overrides config)")
	chatCmd.Flags().StringVar(&chatListenCmd, "listen-cmd", "", "Speech-to-text command printing the transcript (overrides config)")
	chatCmd.Flags().StringVar(&chatOutDir, "out", ".", "Directory for documents written by /generate")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	speaker, recognizer := buildVoiceEngines(app.cfg, cmd)

	opts := []chat.Option{}
	if speaker != nil {
		opts = append(opts, chat.WithSpeaker(speaker))
	}
	controller := chat.NewController(app.client, opts...)
	controller.SetVoiceOutput(chatVoice || app.cfg.Voice)

	ctx := cmd.Context()
	if err := controller.CreateSession(ctx); err != nil {
		return err
	}
	cmd.Printf("Session %s started. Type /help for commands.\n\n", controller.SessionID())
	controller.AppendAgentNote("Hi! Tell me about yourself and I'll build your CV.")
	cmd.Println("Agent: Hi! Tell me about yourself and I'll build your CV.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/help":
			cmd.Println("Commands: /listen  /voice on|off  /generate  /transcript  /quit")
			continue
		case line == "/transcript":
			app.printer.PrintTranscript(controller.Messages())
			continue
		case strings.HasPrefix(line, "/voice"):
			enabled := strings.HasSuffix(line, "on")
			if speaker == nil && enabled {
				cmd.Println("No text-to-speech command configured (--say-cmd).")
				continue
			}
			controller.SetVoiceOutput(enabled)
			cmd.Printf("Voice output %s.\n", onOff(enabled))
			continue
		case line == "/listen":
			if recognizer == nil {
				cmd.Println("No speech-to-text command configured (--listen-cmd).")
				continue
			}
			cmd.Println("Listening...")
			heard, err := recognizer.Recognize(ctx)
			if err != nil {
				cmd.Printf("Recognition failed: %v\n", err)
				continue
			}
			cmd.Printf("You said: %s\n", heard)
			line = heard
		case line == "/generate":
			if err := generateAndReport(cmd, app, controller.SessionID(), chatOutDir); err != nil {
				cmd.Printf("Generation failed: %v\n", err)
			}
			continue
		}

		reply, err := controller.SendMessage(ctx, line)
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			// The error bubble is already on the transcript; show it.
			messages := controller.Messages()
			cmd.Printf("Agent: %s\n", messages[len(messages)-1].Text)
			app.logger.Warn("message send failed", "error", err)
			continue
		}
		cmd.Printf("Agent: %s\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// buildVoiceEngines wires the configured TTS/STT commands, flag values
// winning over config.
func buildVoiceEngines(cfg *config.Config, cmd *cobra.Command) (voiceio.Speaker, voiceio.Recognizer) {
	sayCommand := chatSayCmd
	if sayCommand == "" {
		sayCommand = cfg.TTSCommand
	}
	listenCommand := chatListenCmd
	if listenCommand == "" {
		listenCommand = cfg.STTCommand
	}

	var speaker voiceio.Speaker
	if name, args := config.SplitCommand(sayCommand); name != "" {
		speaker = voiceio.NewExecSpeaker(name, args, voiceio.Events{
			OnError: func(err error) { cmd.PrintErrf("Speech failed: %v\n", err) },
		})
	}

	var recognizer voiceio.Recognizer
	if name, args := config.SplitCommand(listenCommand); name != "" {
		recognizer = voiceio.NewExecRecognizer(name, args)
	}
	return speaker, recognizer
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
