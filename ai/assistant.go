// ABOUTME: Generative-text assistant for drafts, analyses, and proposals
// ABOUTME: Fails closed: every path resolves to text, never an engine error
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/m00n69/visicom/models"
)

// DefaultModel is the model used for all assistant calls.
const DefaultModel = "claude-haiku-4-5"

const maxResponseTokens = 1024

// Fallback strings shown when the assistant cannot answer. The engine never
// sees an error from this package: a missing key or a failed request always
// degrades to one of these.
const (
	fallbackMissingKey    = "Clé API manquante. Veuillez configurer la clé dans les paramètres."
	fallbackDraftError    = "Erreur lors de la génération. Veuillez vérifier votre clé API."
	fallbackDraftEmpty    = "Impossible de générer le brouillon."
	fallbackAnalysisError = "Erreur lors de l'analyse de l'historique."
	fallbackAnalysisEmpty = "Aucune analyse disponible."
	fallbackProposalError = "Erreur lors de la génération de l'offre."
	fallbackProposalEmpty = "Impossible de générer l'offre."
	fallbackDocumentError = "Erreur lors de l'analyse du document."
	fallbackDocumentEmpty = "Je n'ai pas pu analyser ce document."
	fallbackSummaryError  = "Échec du résumé"
)

// Assistant wraps the generative-text service. A zero API key leaves it
// disabled; calls still succeed and return the missing-key fallback.
type Assistant struct {
	client *anthropic.Client
	model  string
}

// NewAssistant creates an assistant. An empty apiKey disables it.
func NewAssistant(apiKey, model string) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	a := &Assistant{model: model}
	if apiKey != "" {
		c := anthropic.NewClient(option.WithAPIKey(apiKey))
		a.client = &c
	}
	return a
}

// Available reports whether a credential was configured.
func (a *Assistant) Available() bool {
	return a.client != nil
}

// complete runs one prompt and extracts the first text block. Any failure
// maps to errFallback; an empty response maps to emptyFallback.
func (a *Assistant) complete(ctx context.Context, prompt, errFallback, emptyFallback string) string {
	if a.client == nil {
		return fallbackMissingKey
	}

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxResponseTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return errFallback
	}

	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			if text := strings.TrimSpace(resp.Content[i].Text); text != "" {
				return text
			}
		}
	}
	return emptyFallback
}

// GenerateEmailDraft writes the body of a follow-up email for the contact.
func (a *Assistant) GenerateEmailDraft(ctx context.Context, c models.Contact, instruction, tone string) string {
	if tone == "" {
		tone = "professional"
	}
	if instruction == "" {
		instruction = "Suivi concernant notre dernière conversation."
	}
	interest := c.CertificationInterest
	if interest == "" {
		interest = "General Consulting"
	}

	prompt := fmt.Sprintf(`You are an expert consultant assistant for a firm specializing in GFSI standards (BRCGS, IFS, FSSC 22000, SQF) and quality management.

Task: Draft a %s email to a client.

Client Context:
Name: %s
Company: %s
Interest: %s
Recent History: Last contact was on %s.

User Instruction: %s

Please provide only the body of the email. Do not include subject lines or placeholders unless necessary.`,
		tone, c.FullName(), c.Company, interest, c.LastContact.Format("2006-01-02"), instruction)

	return a.complete(ctx, prompt, fallbackDraftError, fallbackDraftEmpty)
}

// AnalyzeHistory summarizes the last interactions and suggests a next step.
func (a *Assistant) AnalyzeHistory(ctx context.Context, c models.Contact) string {
	var history strings.Builder
	for i, act := range c.Activities {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&history, "- [%s] %s: %s\n",
			act.Date.Format("2006-01-02"), strings.ToUpper(act.Type), act.Description)
	}

	prompt := fmt.Sprintf(`Analyze the recent interaction history for this consulting lead and suggest the next best action.

Client: %s (%s)
Status: %s

History:
%s
Output a concise summary (max 3 bullet points) and one concrete "Next Step" recommendation.`,
		c.Company, c.FirstName, c.Status, history.String())

	return a.complete(ctx, prompt, fallbackAnalysisError, fallbackAnalysisEmpty)
}

// GenerateProposal writes a consulting offer body in French markdown.
func (a *Assistant) GenerateProposal(ctx context.Context, c models.Contact, needs, standard string) string {
	prompt := fmt.Sprintf(`Rédige une proposition commerciale détaillée (Offre de Service) pour une mission de conseil.

Client : %s
Contact : %s
Référentiel cible : %s
Besoins spécifiques : %s

Structure de l'offre attendue :
1. Contexte et Compréhension du besoin
2. Méthodologie proposée (ex: Diagnostic, Formation, Mise en place documentaire, Audit à blanc)
3. Livrables
4. Planning estimatif
5. Budget estimatif (laisser des xxxx€)

Ton : Professionnel, persuasif, expert en Qualité/GFSI.
Langue : Français.
Format : Markdown propre.`,
		c.Company, c.FullName(), standard, needs)

	return a.complete(ctx, prompt, fallbackProposalError, fallbackProposalEmpty)
}

// AskDocument answers a question about a stored file. No file content is ever
// read: the answer is fabricated from the filename alone. This mirrors the
// product behavior, where document chat is an acknowledged simulation.
func (a *Assistant) AskDocument(ctx context.Context, fileName, question string) string {
	prompt := fmt.Sprintf(`User is asking a question about a document named "%s".
Since the file content is not available, provide a helpful, generic answer based on what such a document usually contains in a GFSI/Quality context.

If it's an "Audit Report", talk about non-conformities and scoring.
If it's a "Scope Extension", talk about product categories.

User Question: "%s"`, fileName, question)

	return a.complete(ctx, prompt, fallbackDocumentError, fallbackDocumentEmpty)
}

// NoteSummary is the structured result of a meeting-note summarization.
type NoteSummary struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"actionItems"`
}

// SummarizeNotes condenses raw meeting notes into a summary plus action
// items. Parse failures degrade to the fallback summary with no items.
func (a *Assistant) SummarizeNotes(ctx context.Context, rawNotes string) NoteSummary {
	if a.client == nil {
		return NoteSummary{Summary: fallbackMissingKey}
	}

	prompt := fmt.Sprintf(`Summarize the following meeting notes for a quality consulting session.
Extract key decisions and a list of action items.

Return ONLY JSON in this exact shape: {"summary": "...", "actionItems": ["...", "..."]}

Notes:
%s`, rawNotes)

	text := a.complete(ctx, prompt, fallbackSummaryError, fallbackSummaryError)

	var result NoteSummary
	if err := json.Unmarshal([]byte(text), &result); err != nil || result.Summary == "" {
		return NoteSummary{Summary: fallbackSummaryError}
	}
	return result
}
