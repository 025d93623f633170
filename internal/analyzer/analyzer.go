// Package analyzer provides the local keyword fallback used when the
// inference API is unreachable. It is deterministic: same symptoms in,
// same advice out.
package analyzer

import "strings"

// Disclaimer is appended to every analysis the service hands out, no
// matter which path produced it.
const Disclaimer = "\n\n⚠️ Disclaimer: This analysis is for educational purposes only and is not a substitute for professional medical advice, diagnosis, or treatment. Always consult a qualified healthcare provider with any questions about a medical condition."

type rule struct {
	category string
	keywords []string
	advice   string
}

// Rules are checked in order; the first keyword hit wins, so a complaint
// mentioning both stomach pain and headache gets the abdominal advice.
var rules = []rule{
	{
		category: "abdominal",
		keywords: []string{"stomach", "abdominal", "abdomen", "belly", "nausea", "vomit", "diarrhea", "indigestion"},
		advice: `Possible causes of stomach or abdominal discomfort:
- Indigestion or trapped gas
- Food intolerance or mild food poisoning
- Stomach flu (viral gastroenteritis)

General advice:
- Stay hydrated with small sips of water
- Eat bland foods such as bananas, rice, or toast
- Avoid fatty, spicy, or acidic foods until you feel better
- Seek medical care if the pain is severe, persistent, or comes with fever`,
	},
	{
		category: "headache",
		keywords: []string{"headache", "migraine", "head pain", "head hurts", "head pressure"},
		advice: `Possible causes of headache:
- Tension or stress
- Dehydration
- Eye strain or lack of sleep

General advice:
- Rest in a quiet, dark room
- Drink water and try a cold or warm compress
- Over-the-counter pain relief may help if it is appropriate for you
- Seek medical care for a sudden severe headache, or one with fever, stiff neck, or vision changes`,
	},
	{
		category: "fever",
		keywords: []string{"fever", "feverish", "temperature", "chills", "sweats"},
		advice: `Possible causes of fever:
- Viral infection such as a cold or the flu
- Bacterial infection
- Inflammatory conditions

General advice:
- Rest and drink plenty of fluids
- Monitor your temperature regularly
- Dress lightly and keep the room comfortable
- Seek medical care if the fever passes 39°C (102°F), lasts more than three days, or comes with severe symptoms`,
	},
}

const genericAdvice = `General guidance for your symptoms:
- Monitor how your symptoms develop over the next 24 to 48 hours
- Rest and stay hydrated
- Note anything that makes the symptoms better or worse
- Seek medical care if symptoms are severe, worsening, or persistent`

// Analyze matches the symptom text against the rule table and returns the
// advice for the first matching category, or generic guidance when nothing
// matches. Matching is case-insensitive. The disclaimer is always appended.
func Analyze(symptoms string) string {
	lowered := strings.ToLower(symptoms)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.advice + Disclaimer
			}
		}
	}
	return genericAdvice + Disclaimer
}
