// Package insights produces a natural-language analysis of a filtered bet
// snapshot through the Gemini API. It is entirely optional to correctness:
// the caller substitutes a fixed fallback message on any failure, and the
// snapshot is read-only so a slow or failed call never touches ledger state.
package insights

import (
	"context"
	"fmt"
	"strings"

	"betpro"

	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Prompt builds the analysis request: the localized analyst instructions
// followed by one line per bet of the snapshot.
func Prompt(instructions, symbol string, bets []betpro.Bet) string {
	lines := make([]string, 0, len(bets))
	for _, b := range bets {
		lines = append(lines, fmt.Sprintf("Match: %s, Odds: %s, Stake: %s%s, Status: %s, Profit: %s%s",
			b.Match, b.Odds, symbol, b.Stake, b.Status, symbol, b.Profit))
	}
	return instructions + "\n\n" + strings.Join(lines, "\n")
}

// Analyze sends the prompt and returns the generated text.
func Analyze(ctx context.Context, client *genai.Client, model, prompt string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("insights generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("insights generation returned no text")
	}
	return text, nil
}
