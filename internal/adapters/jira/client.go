package jira

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slackcmd/internal/core/domain"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	issuePath          = "/rest/api/3/issue"
	issueType          = "Task"
	emptyDescription   = "No description provided"
	messageLinkCaption = "[Slack message link]"
)

// Client files issues through the Jira Cloud REST API using basic auth with an API token.
type Client struct {
	host   string
	user   string
	token  string
	client *http.Client
}

func NewClient(host, user, token string) *Client {
	return &Client{
		host:   strings.TrimRight(host, "/"),
		user:   user,
		token:  token,
		client: &http.Client{},
	}
}

func (c *Client) CreateIssue(ctx context.Context, issue domain.Issue) (string, error) {
	body, err := issueBody(issue)
	if err != nil {
		return "", fmt.Errorf("error building issue body %w", err)
	}

	url := c.host + issuePath
	log.Debug().Str("url", url).RawJSON("body", body).Msg("creating jira issue")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request %w", err)
	}
	req.SetBasicAuth(c.user, c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error executing request %w", err)
	}
	defer res.Body.Close()

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response %w", err)
	}

	log.Debug().Int("status", res.StatusCode).Bytes("response", buf).Msg("jira responded")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("jira API call error: status: %d, msg: %s", res.StatusCode, buf)
	}

	key := gjson.GetBytes(buf, "key")
	if !key.Exists() || key.String() == "" {
		return "", errors.New("jira response is missing the issue key")
	}

	return fmt.Sprintf("%s/browse/%s", c.host, key.String()), nil
}

// issueBody renders the create payload with an Atlassian document description linking back to the thread.
func issueBody(issue domain.Issue) ([]byte, error) {
	description := issue.Description
	if description == "" {
		description = emptyDescription
	}

	text, err := sjson.Set(`{"type":"text"}`, "text", description)
	if err != nil {
		return nil, err
	}

	link, err := sjson.Set(`{"type":"text","marks":[{"type":"link","attrs":{}}]}`, "text", messageLinkCaption)
	if err != nil {
		return nil, err
	}
	link, err = sjson.Set(link, "marks.0.attrs.href", issue.Link)
	if err != nil {
		return nil, err
	}

	paragraph := `{"type":"paragraph","content":[]}`
	for _, node := range []string{text, link} {
		paragraph, err = sjson.SetRaw(paragraph, "content.-1", node)
		if err != nil {
			return nil, err
		}
	}

	body := `{"fields":{"issuetype":{},"description":{"type":"doc","version":1,"content":[]}},"update":{}}`
	for path, value := range map[string]string{
		"fields.project.key":    issue.Project,
		"fields.summary":        issue.Title,
		"fields.issuetype.name": issueType,
	} {
		body, err = sjson.Set(body, path, value)
		if err != nil {
			return nil, err
		}
	}

	body, err = sjson.SetRaw(body, "fields.description.content.-1", paragraph)
	if err != nil {
		return nil, err
	}

	return []byte(body), nil
}
