package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drake/reel/internal/domain"
)

func TestDetailRendersTitleYearAndDirector(t *testing.T) {
	d := NewDetail()
	d.SetSize(70, 20)

	detail := &domain.MovieDetail{
		Movie: domain.Movie{
			ID:          348,
			Title:       "Alien",
			ReleaseDate: "1979-05-25",
			VoteAverage: 8.5,
			Overview:    "The crew of a commercial spacecraft encounter a deadly lifeform.",
		},
		Runtime:   117,
		VoteCount: 14000,
	}
	credits := &domain.Credits{
		Cast: []domain.CastMember{{Name: "Sigourney Weaver"}},
		Crew: []domain.CrewMember{{Name: "Ridley Scott", Job: "Director"}},
	}
	similar := []domain.Movie{{ID: 679, Title: "Aliens", ReleaseDate: "1986-07-18"}}

	d.SetContent(detail, credits, nil, similar)
	view := d.View()

	assert.Contains(t, view, "Alien (1979)")
	assert.Contains(t, view, "Ridley Scott")
	assert.Contains(t, view, "Sigourney Weaver")
	assert.Contains(t, view, "(1986)")
}

func TestDetailWithoutDateOrCrewOmitsSections(t *testing.T) {
	d := NewDetail()
	d.SetSize(70, 20)

	d.SetContent(&domain.MovieDetail{Movie: domain.Movie{ID: 1, Title: "Untitled"}}, &domain.Credits{}, nil, nil)
	view := d.View()

	assert.Contains(t, view, "Untitled")
	assert.NotContains(t, view, "(0)")
	assert.NotContains(t, view, "Director")
}
