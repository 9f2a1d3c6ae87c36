package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/port"
	"slackcmd/internal/core/service"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const (
	jiraTitleLimit = 50
	jiraUsage      = "Usage: jira --project KEY [--title TITLE] [--description TEXT]"
)

type JiraHandler struct {
	issues port.IssueCreator
	scope  domain.ChannelScope
}

func NewJiraHandler(issues port.IssueCreator, scope domain.ChannelScope) *JiraHandler {
	return &JiraHandler{issues: issues, scope: scope}
}

func (h *JiraHandler) Name() string {
	return "jira"
}

func (h *JiraHandler) Description() string {
	return "Create jira ticket"
}

func (h *JiraHandler) ChannelScope() domain.ChannelScope {
	return h.scope
}

type jiraArgs struct {
	project     string
	title       string
	description string
	hasTitle    bool
	hasDesc     bool
}

func (h *JiraHandler) Execute(ctx context.Context, args []string, message *domain.Message,
	state *service.State) error {
	target, err := message.ReplyTarget()
	if err != nil {
		return err
	}

	parsed, err := parseJiraArgs(args)
	if err != nil {
		// bad input is answered in chat, it is not a handler failure
		return reply(ctx, state.Client, target, err.Error())
	}

	l := log.With().
		Str("channel", target.Channel).
		Str("thread", target.Thread).
		Str("project", parsed.project).
		Logger()

	root, err := state.Client.GetMessage(ctx, target.Channel, target.Thread)
	if err != nil {
		return fmt.Errorf("failed to fetch thread root: %w", err)
	}
	if root == nil {
		return fmt.Errorf("thread root %s: %w", target.Thread, domain.ErrMessageNotFound)
	}

	body := strings.TrimSpace(strings.TrimPrefix(root.Text, state.Marker))

	if !parsed.hasTitle {
		parsed.title = "slack: " + truncate(body, jiraTitleLimit)
	}
	if !parsed.hasDesc {
		parsed.description = fmt.Sprintf("Slack message:\n%s\n\n", body)
	}

	link, err := state.Client.GetPermalink(ctx, target.Channel, target.Thread)
	if err != nil {
		return fmt.Errorf("failed to fetch permalink: %w", err)
	}

	l.Info().Msg("creating jira issue")

	url, err := h.issues.CreateIssue(ctx, domain.Issue{
		Project:     strings.ToUpper(parsed.project),
		Title:       parsed.title,
		Description: parsed.description,
		Link:        link,
	})
	if err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	l.Info().Str("url", url).Msg("jira issue created")

	return reply(ctx, state.Client, target, "Issue created: "+url)
}

func parseJiraArgs(args []string) (*jiraArgs, error) {
	fs := pflag.NewFlagSet("jira", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	parsed := &jiraArgs{}
	fs.StringVarP(&parsed.project, "project", "p", "", "jira project key")
	fs.StringVarP(&parsed.title, "title", "t", "", "issue title, defaults to the start of the thread")
	fs.StringVarP(&parsed.description, "description", "d", "", "issue description, defaults to the thread text")

	if len(args) > 0 {
		args = args[1:]
	}

	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil, fmt.Errorf("%s\n%s", jiraUsage, fs.FlagUsages())
	}
	if err != nil {
		return nil, fmt.Errorf("error: %w\n%s\n%s", err, jiraUsage, fs.FlagUsages())
	}
	if parsed.project == "" {
		return nil, fmt.Errorf("error: required flag --project not set\n%s\n%s", jiraUsage, fs.FlagUsages())
	}

	parsed.hasTitle = fs.Changed("title")
	parsed.hasDesc = fs.Changed("description")

	return parsed, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

func reply(ctx context.Context, replier port.Replier, target domain.ReplyTarget, text string) error {
	if err := replier.SendReply(ctx, target, text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
