// Package reply renders resolved intents into bilingual LINE text replies.
package reply

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

const HelpText = "You can either send me a prefecture (e.g. \"Tokyo\", \"Kyoto-fu\") or your location, " +
	"and I will tell you the latest number of COVID-19 cases there.\n" +
	"都道府県名（例：「東京都」「京都」）または位置情報を送ると、その地域の最新の新型コロナウイルス感染者数をお知らせします。"

const FallbackText = "I'm sorry, I didn't understand your message. Please try again, or type \"help\".\n" +
	"すみません、メッセージを理解できませんでした。もう一度お試しいただくか、「help」と入力してください。"

// Registry is the subset of the prefecture registry the formatter reads.
type Registry interface {
	Entry(id models.PrefectureID) (models.PrefectureEntry, bool)
}

type Formatter struct {
	registry Registry
}

func NewFormatter(registry Registry) *Formatter {
	return &Formatter{registry: registry}
}

// Format renders intent. record and fetchErr are the case-data result and are
// only read for prefecture queries.
func (f *Formatter) Format(intent models.ResolvedIntent, record *models.CaseRecord, fetchErr error) models.ReplyPayload {
	switch intent.Kind {
	case models.IntentHelp:
		return models.ReplyPayload{Text: HelpText, Outcome: models.OutcomeHelp}
	case models.IntentPrefectureQuery:
		return f.formatCases(intent.Prefecture, record, fetchErr)
	default:
		return f.Fallback(models.OutcomeUnrecognized)
	}
}

// Fallback returns the generic retry message labelled with outcome.
func (f *Formatter) Fallback(outcome models.ReplyOutcome) models.ReplyPayload {
	return models.ReplyPayload{Text: FallbackText, Outcome: outcome}
}

func (f *Formatter) formatCases(id models.PrefectureID, record *models.CaseRecord, fetchErr error) models.ReplyPayload {
	if fetchErr != nil {
		if errors.Is(fetchErr, models.ErrCaseRecordNotFound) {
			return f.Fallback(models.OutcomeNoData)
		}
		return f.Fallback(models.OutcomeUpstreamError)
	}

	entry, ok := f.registry.Entry(id)
	if !ok || record == nil {
		return f.Fallback(models.OutcomeNoData)
	}

	count := strconv.Itoa(record.InfectedCount)

	var b strings.Builder
	b.WriteString("Latest COVID-19 cases in ")
	b.WriteString(entry.RomanizedName)
	b.WriteString(": ")
	b.WriteString(count)
	b.WriteString("\n")
	b.WriteString(entry.KanjiName)
	b.WriteString("の最新の感染者数：")
	b.WriteString(count)
	b.WriteString("人")

	return models.ReplyPayload{Text: b.String(), Outcome: models.OutcomeCases}
}
