package usecase

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
)

// MaxFAQs caps the merged FAQ list across all container selectors
const MaxFAQs = 5

// ExtractFAQs probes the FAQ container selectors in order and collects question/answer pairs.
// When nothing is found the fixed default set is returned.
func ExtractFAQs(doc *goquery.Document) []domain.FAQ {
	faqs := make([]domain.FAQ, 0, MaxFAQs)
	seen := make(map[domain.FAQ]struct{})

	for _, selector := range faqContainerSelectors {
		if len(faqs) >= MaxFAQs {
			break
		}
		doc.Find(selector).EachWithBreak(func(_ int, item *goquery.Selection) bool {
			faq, ok := faqFromContainer(item)
			if !ok {
				return true
			}
			// nested containers often match more than one selector
			if _, dup := seen[faq]; dup {
				return true
			}
			seen[faq] = struct{}{}
			faqs = append(faqs, faq)
			return len(faqs) < MaxFAQs
		})
	}

	if len(faqs) == 0 {
		return append([]domain.FAQ(nil), defaultFAQs...)
	}
	return faqs
}

func faqFromContainer(item *goquery.Selection) (domain.FAQ, bool) {
	question := item.Find(faqQuestionSelector).First()
	answer := item.Find(faqAnswerSelector).First()
	if question.Length() == 0 || answer.Length() == 0 {
		return domain.FAQ{}, false
	}

	faq := domain.FAQ{
		Question: markup.StrippedText(question),
		Answer:   markup.StrippedText(answer),
	}
	return faq, faq.Question != "" && faq.Answer != ""
}
