// Package prompt holds the prompt builders for every scoring method.
// All builders are pure: same request in, same text out, no I/O.
package prompt

import (
	"fmt"

	"github.com/gemba-score/backend/internal/domain/score"
)

// mqmTaxonomy is the MQM error taxonomy shared by the MQM and ESA
// annotation prompts, up to the severity sentence which differs between them.
const mqmTaxonomy = "Based on the source segment and machine translation surrounded with triple backticks,\n" +
	"identify error types in the translation and classify them. The categories of errors are:\n" +
	"accuracy (addition, mistranslation, omission, untranslated text), fluency (character\n" +
	"encoding, grammar, inconsistency, punctuation, register, spelling), style (awkward),\n" +
	"terminology (inappropriate for context, inconsistent use), non-translation, other, or\n" +
	"no-error."

// DirectAssessment builds the single-prompt GEMBA-DA scoring request.
func DirectAssessment(req score.Request) string {
	return fmt.Sprintf("Score the following translation from %s to %s on a continuous\n"+
		"scale from 0 to 100, where a score of zero means \"no meaning preserved\" and score of one\n"+
		"hundred means \"perfect meaning and grammar\".\n"+
		"\n"+
		"%s source: \"%s\"\n"+
		"%s translation: \"%s\"\n"+
		"Score:",
		req.SourceLang, req.TargetLang,
		req.SourceLang, req.SourceText,
		req.TargetLang, req.TargetText)
}

// MQMSystem is the fixed system instruction for GEMBA-MQM.
func MQMSystem() string {
	return "You are an expert MQM evaluator. Identify translation errors and output a holistic quality\n" +
		"score on a 0-100 scale (0 = unusable, 100 = perfect). Return ONLY JSON: {\"score\": number,\n" +
		"\"analysis\": string describing notable errors}."
}

// MQMFewShotUser is the fixed one-shot example request for GEMBA-MQM.
func MQMFewShotUser() string {
	return "English source:\n" +
		"```Hello world.```\n" +
		"German translation:\n" +
		"```Hallo Welt.```\n" +
		"\n" +
		"Based on the source segment and machine translation surrounded with triple backticks,\n" +
		"identify error types in the translation and classify them."
}

// MQMFewShotAssistant is the fixed one-shot example answer for GEMBA-MQM.
func MQMFewShotAssistant() string {
	return `{"score": 100, "analysis": "No errors detected; translation is perfect."}`
}

// MQMFinal builds the last user message of the GEMBA-MQM exchange.
func MQMFinal(req score.Request) string {
	return fmt.Sprintf("%s source:\n"+
		"```%s```\n"+
		"%s translation:\n"+
		"```%s```\n"+
		"\n"+
		mqmTaxonomy+
		" Each error is classified as one of three categories: critical, major, and minor.\n"+
		"Critical errors inhibit comprehension of the text. Major errors disrupt the flow, but what\n"+
		"the text is trying to say is still understandable. Minor errors are technically errors, but\n"+
		"do not disrupt the flow or hinder comprehension.",
		req.SourceLang, req.SourceText,
		req.TargetLang, req.TargetText)
}

// ESAErrorAnnotation builds the first GEMBA-ESA prompt, which asks the model
// to annotate error spans without scoring.
func ESAErrorAnnotation(req score.Request) string {
	return fmt.Sprintf("%s source:\n"+
		"```%s```\n"+
		"%s translation:\n"+
		"```%s```\n"+
		"\n"+
		mqmTaxonomy+
		" Each error is classified as one of two categories: major or minor. Major errors\n"+
		"disrupt the flow and make the understandability of text difficult or impossible. Minor\n"+
		"errors are errors that do not disrupt the flow significantly and what the text is trying to\n"+
		"say is still understandable.",
		req.SourceLang, req.SourceText,
		req.TargetLang, req.TargetText)
}

// ESAScoring builds the second GEMBA-ESA prompt. The error annotation from the
// first call is embedded verbatim, however long it is.
func ESAScoring(req score.Request, errors string) string {
	return fmt.Sprintf("Given the translation from %s to %s and the annotated error spans,\n"+
		"assign a score on a continuous scale from 0 to 100. The scale has following reference\n"+
		"points:\n"+
		"0=\"No meaning preserved\", 33=\"Some meaning preserved\", 66=\"Most meaning preserved and few\n"+
		"grammar mistakes\", up to 100=\"Perfect meaning and grammar\".\n"+
		"\n"+
		"Score the following translation from %s source:\n"+
		"```%s```\n"+
		"%s translation:\n"+
		"```%s```\n"+
		"Annotated error spans:\n"+
		"```%s```\n"+
		"Score (0-100):",
		req.SourceLang, req.TargetLang,
		req.SourceLang, req.SourceText,
		req.TargetLang, req.TargetText,
		errors)
}

// StructuredDASystem is the fixed system instruction for STRUCTURED-DA.
func StructuredDASystem() string {
	return "You are an expert bilingual evaluator of machine translation quality. Be strict but fair."
}

// StructuredDAUser builds the STRUCTURED-DA user message requesting a
// schema-constrained JSON answer.
func StructuredDAUser(req score.Request) string {
	return fmt.Sprintf("Evaluate the quality of the following machine translation from %s to\n"+
		"%s.\n"+
		"Return ONLY a JSON object with these fields:\n"+
		"score: holistic quality 0-100 (float)\n"+
		"adequacy: semantic accuracy and completeness 0-5 (float, where 5 = perfect meaning\n"+
		"preservation)\n"+
		"fluency: grammatical correctness and naturalness 0-5 (float, where 5 = perfect native\n"+
		"fluency)\n"+
		"rationale: brief explanation of the score (1-2 sentences)\n"+
		"\n"+
		"%s source: %s\n"+
		"%s hypothesis: %s\n"+
		"\n"+
		"IMPORTANT: Output valid JSON only, no markdown fences or extra text.",
		req.SourceLang, req.TargetLang,
		req.SourceLang, req.SourceText,
		req.TargetLang, req.TargetText)
}
