package specview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleSameSectionCloses(t *testing.T) {
	var d Disclosure

	_, open := d.Open()
	assert.False(t, open, "zero value has nothing open")

	d = d.Toggle(SectionAPIs)
	assert.True(t, d.IsOpen(SectionAPIs))

	d = d.Toggle(SectionAPIs)
	_, open = d.Open()
	assert.False(t, open, "toggling the open section closes it")
}

func TestToggleOtherSectionSwitches(t *testing.T) {
	var d Disclosure

	d = d.Toggle(SectionModules)
	d = d.Toggle(SectionDB)

	assert.True(t, d.IsOpen(SectionDB))
	assert.False(t, d.IsOpen(SectionModules), "previous section implicitly closed")
}

func TestAtMostOneOpenForAnySequence(t *testing.T) {
	sequences := [][]Section{
		{SectionModules, SectionFeatures, SectionStories, SectionAPIs, SectionDB, SectionQuestions},
		{SectionAPIs, SectionAPIs, SectionAPIs},
		{SectionDB, SectionDB, SectionModules, SectionQuestions, SectionQuestions},
		{SectionFeatures, SectionStories, SectionFeatures, SectionFeatures},
	}

	for _, seq := range sequences {
		var d Disclosure
		for _, s := range seq {
			d = d.Toggle(s)

			openCount := 0
			for _, sec := range Sections {
				if d.IsOpen(sec) {
					openCount++
				}
			}
			assert.LessOrEqual(t, openCount, 1, "sequence %v", seq)
		}
	}
}

func TestToggleIsPure(t *testing.T) {
	d := Disclosure{}.Toggle(SectionStories)

	_ = d.Toggle(SectionDB)

	assert.True(t, d.IsOpen(SectionStories), "Toggle must not mutate the receiver")
}
