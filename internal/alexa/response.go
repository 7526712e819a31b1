package alexa

import "fmt"

type Response struct {
	Version  string       `json:"version"`
	Response ResponseBody `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *SimpleCard   `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type SimpleCard struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Builder assembles a response envelope the way the platform SDKs do.
type Builder struct {
	resp Response
}

func NewBuilder() *Builder {
	return &Builder{resp: Response{Version: "1.0"}}
}

func ssmlSpeech(text string) OutputSpeech {
	return OutputSpeech{
		Type: "SSML",
		SSML: fmt.Sprintf("<speak>%s</speak>", text),
	}
}

// Speak sets the spoken output. The text is expected to be SSML-safe; free
// text must already be escaped by the speech layer.
func (b *Builder) Speak(text string) *Builder {
	speech := ssmlSpeech(text)
	b.resp.Response.OutputSpeech = &speech
	return b
}

func (b *Builder) Reprompt(text string) *Builder {
	b.resp.Response.Reprompt = &Reprompt{OutputSpeech: ssmlSpeech(text)}
	return b
}

func (b *Builder) WithSimpleCard(title, content string) *Builder {
	b.resp.Response.Card = &SimpleCard{
		Type:    "Simple",
		Title:   title,
		Content: content,
	}
	return b
}

func (b *Builder) WithShouldEndSession(end bool) *Builder {
	b.resp.Response.ShouldEndSession = end
	return b
}

func (b *Builder) Build() Response {
	return b.resp
}
