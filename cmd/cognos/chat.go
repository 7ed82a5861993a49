package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"cognos/internal/parse"
	"cognos/internal/persona"
	"cognos/internal/store"
	"cognos/internal/types"
)

// chatState is the mutable session state of one REPL run.
type chatState struct {
	session *store.Session
	mode    types.BehaviorMode
	style   string
}

// runChat drives the interactive loop. Slash commands mutate local state;
// everything else is dispatched as a user turn.
func runChat(ctx context.Context, rt *runtime) error {
	mode := types.BehaviorMode(modeFlag)
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q", modeFlag)
	}

	if personaFlag != "" {
		profile, err := rt.profiles.Load()
		if err != nil {
			return err
		}
		profile.Persona = personaFlag
		if err := rt.profiles.Save(profile); err != nil {
			return err
		}
	}

	session, err := rt.history.Create("New chat", rt.cfg.Model)
	if err != nil {
		return err
	}
	state := &chatState{session: session, mode: mode, style: styleFlag}

	fmt.Printf("Cognos chat. Mode: %s. Type /help for commands, /exit to quit.\n", state.mode)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if quit := handleCommand(rt, state, line); quit {
				break
			}
			continue
		}
		if err := sendTurn(ctx, rt, state, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func handleCommand(rt *runtime, state *chatState, line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "/exit", "/quit":
		return true
	case "/help":
		fmt.Println("Commands: /mode <m>  /persona <id>  /style <artist-id>  /new  /exit")
	case "/mode":
		m := types.BehaviorMode(arg)
		if !m.Valid() {
			fmt.Printf("Invalid mode %q. Valid: standard, creative, deep, legendary, copilot.\n", arg)
			break
		}
		state.mode = m
		fmt.Println("Mode:", m)
	case "/persona":
		profile, err := rt.profiles.Load()
		if err != nil {
			fmt.Println("Failed to load profile:", err)
			break
		}
		profile.Persona = arg
		if err := rt.profiles.Save(profile); err != nil {
			fmt.Println("Failed to save profile:", err)
			break
		}
		fmt.Println("Persona:", persona.Lookup(arg).Name)
	case "/style":
		state.style = arg
		fmt.Println("Style token:", arg)
	case "/new":
		session, err := rt.history.Create("New chat", rt.cfg.Model)
		if err != nil {
			fmt.Println("Failed to start session:", err)
			break
		}
		state.session = session
		fmt.Println("Started new session", session.ID)
	default:
		fmt.Println("Unknown command. Type /help.")
	}
	return false
}

func sendTurn(ctx context.Context, rt *runtime, state *chatState, text string) error {
	profile, err := rt.profiles.Load()
	if err != nil {
		return err
	}

	userTurn := types.ConversationTurn{
		ID:      uuid.NewString(),
		Role:    types.RoleUser,
		Text:    text,
		Mode:    state.mode,
		Persona: profile.Persona,
	}
	state.session.Turns = append(state.session.Turns, userTurn)
	if state.session.Title == "New chat" {
		state.session.Title = truncateTitle(text)
	}

	result, err := rt.dispatcher.Dispatch(ctx, state.session.Turns, state.mode, profile, rt.cfg.Identity(), state.style)
	if err != nil {
		return err
	}

	printResult(result)

	modelTurn := types.ConversationTurn{
		ID:          uuid.NewString(),
		Role:        types.RoleModel,
		Text:        result.Text,
		Sources:     result.Sources,
		ToolOutcome: result.ToolOutcome,
		Artifact:    result.Artifact,
		ErrorText:   result.ErrorText,
		ResearchLog: result.ResearchLog,
		Mode:        state.mode,
		Persona:     profile.Persona,
	}
	state.session.Turns = append(state.session.Turns, modelTurn)
	return rt.history.Save(state.session)
}

func printResult(result *types.AgentResult) {
	if result.IsError() {
		fmt.Println("!", result.ErrorText)
		return
	}
	text, embeddedLog, embedded := parse.Normalize(result.Text)
	for _, entry := range result.ResearchLog {
		fmt.Println("  *", entry)
	}
	for _, entry := range embeddedLog {
		fmt.Println("  *", entry)
	}
	if text != "" {
		fmt.Println(text)
	}
	if a := result.Artifact; a != nil {
		fmt.Printf("[artifact: %s %q]\n", a.Kind, a.Title)
	} else if embedded != nil {
		fmt.Printf("[artifact: %s %q]\n", embedded.Kind, embedded.Title)
	}
	if result.ToolOutcome != nil {
		fmt.Printf("[tool: %s]\n", result.ToolOutcome.Name)
	}
	for _, s := range result.Sources {
		fmt.Printf("  - %s (%s)\n", s.Title, s.URI)
	}
}

func truncateTitle(text string) string {
	const max = 48
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
