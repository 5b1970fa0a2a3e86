package quiz

import "html"

// Sanitize decodes HTML character entities (&quot;, &#039;, ...) as sent
// by the trivia API into plain display text. Decoding is best-effort:
// text without entities passes through unchanged, and the function is
// idempotent on already-decoded text. It must be applied to prompts,
// options, and correct answers alike so string equality between a
// selection and the correct answer stays valid.
func Sanitize(raw string) string {
	return html.UnescapeString(raw)
}
