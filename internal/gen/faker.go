package gen

import (
	"fmt"
	"strings"
)

// Faker produces the synthetic name/contact/description fields. It
// shares the run's Sampler so a fixed seed pins every field.
type Faker struct {
	sampler *Sampler
	counter int
}

func NewFaker(sampler *Sampler) *Faker {
	return &Faker{sampler: sampler}
}

var (
	firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack", "Karen", "Leo", "Mona", "Nate"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Lopez", "Wilson", "Anderson", "Taylor"}

	recordPhrases = []string{
		"Resident reported the issue via the front desk.",
		"Routine walkthrough, no anomalies noted.",
		"Follow-up scheduled with the contractor.",
		"Parts ordered, awaiting delivery.",
		"Resolved on site, resident confirmed.",
		"Escalated to the building supervisor.",
	}
)

func (f *Faker) Name() string {
	return firstNames[f.sampler.Index(len(firstNames))] + " " + lastNames[f.sampler.Index(len(lastNames))]
}

// Username derives a handle from a generated name plus a numeric tail,
// unique enough for the users table's UNIQUE constraint at run sizes.
func (f *Faker) Username() string {
	f.counter++
	first := strings.ToLower(firstNames[f.sampler.Index(len(firstNames))])
	last := strings.ToLower(lastNames[f.sampler.Index(len(lastNames))])
	return fmt.Sprintf("%s.%s%d", first, last, f.counter*10000+f.sampler.Index(10000))
}

func (f *Faker) Email(username string) string {
	domains := []string{"example.com", "mail.com", "inbox.com"}
	return fmt.Sprintf("%s@%s", username, domains[f.sampler.Index(len(domains))])
}

func (f *Faker) Phone() string {
	return fmt.Sprintf("1%02d%08d", 30+f.sampler.Index(60), f.sampler.Index(100000000))
}

// Description returns a short two-sentence service note.
func (f *Faker) Description() string {
	a := recordPhrases[f.sampler.Index(len(recordPhrases))]
	b := recordPhrases[f.sampler.Index(len(recordPhrases))]
	return a + " " + b
}
