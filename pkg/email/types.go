package email

type Message struct {
	To          []string
	CC          []string
	BCC         []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Headers     map[string]string
	Attachments []Attachment
	// Calendar, when set, is also sent as a text/calendar alternative part so
	// mail clients render accept/decline controls.
	Calendar *Attachment
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
