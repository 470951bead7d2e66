package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `noteflow keeps personal notes and turns the dates mentioned in them into notifications.

Core concepts:
- Note: title + content with a category, a color, and pinned/archived flags.
- Notification: a date reference detected in a non-archived note. One per note and calendar day.
- Feed: unread count, events dated today, and upcoming events (after today, soonest first).

Typical workflow:
1) Capture: create_note / update_note. Mention dates naturally ("call Sam tomorrow", "due Jan 15").
2) Review: get_notification_feed scans every note first, then returns the feed.
3) Triage: mark_notification_read, mark_all_notifications_read, delete_notification.
4) Housekeeping: list_notifications shows stale entries whose note was deleted.

Docs:
- noteflow://docs/detection (which phrases are recognised and how they are classified)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "noteflow://docs/detection",
		Name:        "docs_detection",
		Title:       "Date detection rules",
		Description: "Phrases recognised by note scans, their priority, and how events are typed.",
		Content: `# Date detection

Each note is scanned as its title and content joined by a space, one line at a time.
Archived notes are skipped. The first rule that matches a line wins; later rules are not tried.
Matching is case-insensitive and resolves to a calendar day (midnight in the server timezone).

## Rules, in priority order

1. ` + "`today`" + ` - the current day
2. ` + "`tomorrow`" + ` - the next day
3. ` + "`yesterday`" + ` - the previous day
4. weekday names, checked sunday through saturday - the next such day; naming today's weekday means one week ahead
5. ` + "`next week`" + ` - seven days ahead
6. ` + "`in N days|weeks|months`" + ` - N days, N*7 days, or N calendar months ahead
7. month name and day - ` + "`Jan 15`" + `, ` + "`January 15th, 2025`" + `, ` + "`15 Feb`" + `; placed in the current year unless the server honours explicit years
8. ISO dates - ` + "`2024-03-05`" + `

Numeric dates such as 01/15/2024 and bare times such as 3:30 pm are not resolved.

## Event types

The first group whose keyword appears in the line decides the type:

| Keywords | Type |
|---|---|
| deadline, due | deadline |
| meeting, appointment, call, conference, interview | event |
| reminder, remember | reminder |
| a clock time like 14:30 | time |
| anything else | date |

## Descriptions

The description is the sentence of the note content containing the line, or the first
100 characters of the content when no sentence contains it.

## Duplicates

A notification's ID is the note ID plus the resolved day. Rescanning never creates a second
notification for the same note and day, including after it was read. Deleted notifications
reappear on the next scan while the note still mentions the date.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
