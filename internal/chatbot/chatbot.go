// Package chatbot answers air-quality questions with canned replies chosen by
// keyword.
package chatbot

import "strings"

// Role identifies who authored a transcript entry.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Rule maps any of its keywords to a reply.
type Rule struct {
	Keywords []string
	Reply    string
}

// Fallback is returned when no rule matches.
const Fallback = "I'm a simple chatbot 🤖. Ask about AQI, PM2.5, mask, health, tips etc."

// Rules are checked in order and the first match wins. Keywords are
// lower-case substrings, so "hi" also matches inside longer words.
var Rules = []Rule{
	{[]string{"hello", "hi"}, "Hello! How can I help you with air quality?"},
	{[]string{"aqi"}, "AQI stands for Air Quality Index. Higher AQI = more pollution."},
	{[]string{"pm2.5"}, "PM2.5 are tiny particles smaller than 2.5 microns that can enter lungs and bloodstream."},
	{[]string{"pm10"}, "PM10 are dust particles ≤10 microns that affect throat and nose."},
	{[]string{"mask"}, "Wear an N95 mask when AQI is Poor or Very Poor 😷"},
	{[]string{"health", "problem"}, "Poor AQI may trigger asthma, coughing, eye irritation and heart stress."},
	{[]string{"tips", "advice"}, "Stay indoors, use N95 mask, keep plants, avoid morning walk in heavy traffic."},
	{[]string{"goodbye", "bye"}, "Goodbye! Stay safe and monitor AQI regularly."},
}

// Reply returns the canned answer for input.
func Reply(input string) string {
	q := strings.ToLower(input)
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(q, kw) {
				return r.Reply
			}
		}
	}
	return Fallback
}
