package render

import (
	"fmt"
	"html/template"
	"io"

	"noticeboard/internal/model"
)

const DefaultSummaryLength = 100

// Renderer turns selected notices into HTML fragments for the site. Title
// and description markup from the sheet is emitted as-is.
type Renderer struct {
	summaryLength int
	tmpl          *template.Template
}

func New(summaryLength int) *Renderer {
	if summaryLength <= 0 {
		summaryLength = DefaultSummaryLength
	}

	tmpl := template.New("fragments")
	for _, text := range []string{cardTemplate, summariesTemplate, detailTemplate, archiveTemplate, messageTemplate} {
		tmpl = template.Must(tmpl.Parse(text))
	}

	return &Renderer{summaryLength: summaryLength, tmpl: tmpl}
}

type cardView struct {
	Position    int
	Date        string
	Title       string
	Description string
	TitleHTML   template.HTML
	Summary     template.HTML
}

type detailView struct {
	Date      string
	TitleHTML template.HTML
	Body      template.HTML
}

// Summary returns the card text for n's description, cut after the
// configured number of text characters.
func (r *Renderer) Summary(n model.Notice) string {
	return Truncate(n.Description, r.summaryLength)
}

// Summaries writes one card per notice, or the empty message when there
// are none.
func (r *Renderer) Summaries(w io.Writer, notices []model.Notice) error {
	if len(notices) == 0 {
		return r.Message(w, MessageEmpty)
	}

	cards := make([]cardView, len(notices))
	for i, n := range notices {
		cards[i] = cardView{
			Position:    i,
			Date:        n.Date,
			Title:       n.Title,
			Description: n.Description,
			TitleHTML:   template.HTML(n.Title),
			Summary:     template.HTML(r.Summary(n)),
		}
	}

	return r.execute(w, "summaries", cards)
}

// Detail writes the popup for a selected notice with its full description.
func (r *Renderer) Detail(w io.Writer, n model.Notice) error {
	return r.execute(w, "detail", toDetail(n))
}

// Archive writes every notice in full. When there is nothing beyond the
// first minimum notices the "no more notices" message is written instead.
func (r *Renderer) Archive(w io.Writer, notices []model.Notice, minimum int) error {
	if len(notices) <= minimum {
		return r.Message(w, MessageNoMore)
	}

	items := make([]detailView, len(notices))
	for i, n := range notices {
		items[i] = toDetail(n)
	}

	return r.execute(w, "archive", items)
}

func (r *Renderer) Message(w io.Writer, kind MessageKind) error {
	msg, ok := messages[kind]
	if !ok {
		return fmt.Errorf("render: unknown message kind %d", kind)
	}
	return r.execute(w, "message", msg)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func toDetail(n model.Notice) detailView {
	return detailView{
		Date:      n.Date,
		TitleHTML: template.HTML(n.Title),
		Body:      template.HTML(FormatText(n.Description)),
	}
}
