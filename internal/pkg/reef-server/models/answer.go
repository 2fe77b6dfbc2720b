package models

// Answer is a named configuration value attached to a service, product or
// provider. Names are an open vocabulary; consumers recognize a subset by
// exact name and ignore the rest.
type Answer struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// AnswerSet is the flat collection of answers carried by an entity.
type AnswerSet []Answer

// Lookup returns the value of the first answer with the given name, with an
// ok flag reporting whether the answer is present at all.
func (a AnswerSet) Lookup(name string) (string, bool) {
	for _, ans := range a {
		if ans.Name == name {
			return ans.Value, true
		}
	}
	return "", false
}

// Get returns the value of the named answer or the empty string when absent.
func (a AnswerSet) Get(name string) string {
	v, _ := a.Lookup(name)
	return v
}
