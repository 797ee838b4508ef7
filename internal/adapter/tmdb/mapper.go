package tmdb

import "github.com/drake/reel/internal/domain"

func mapMovie(dto movieDTO) domain.Movie {
	return domain.Movie{
		ID:           dto.ID,
		Title:        dto.Title,
		PosterPath:   dto.PosterPath,
		BackdropPath: dto.BackdropPath,
		VoteAverage:  dto.VoteAverage,
		ReleaseDate:  dto.ReleaseDate,
		Overview:     dto.Overview,
		GenreIDs:     dto.GenreIDs,
	}
}

func mapPage(dto pageDTO) *domain.Page {
	movies := make([]domain.Movie, 0, len(dto.Results))
	for _, m := range dto.Results {
		movies = append(movies, mapMovie(m))
	}
	return &domain.Page{
		Movies:       movies,
		Page:         dto.Page,
		TotalPages:   dto.TotalPages,
		TotalResults: dto.TotalResults,
	}
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, 0, len(dtos))
	for _, g := range dtos {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

func mapDetail(dto detailDTO) *domain.MovieDetail {
	return &domain.MovieDetail{
		Movie:     mapMovie(dto.movieDTO),
		Genres:    mapGenres(dto.Genres),
		Runtime:   dto.Runtime,
		Tagline:   dto.Tagline,
		Status:    dto.Status,
		VoteCount: dto.VoteCount,
		Homepage:  dto.Homepage,
	}
}

func mapCredits(dto creditsDTO) *domain.Credits {
	cast := make([]domain.CastMember, 0, len(dto.Cast))
	for _, c := range dto.Cast {
		cast = append(cast, domain.CastMember{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
			Order:       c.Order,
		})
	}
	crew := make([]domain.CrewMember, 0, len(dto.Crew))
	for _, c := range dto.Crew {
		crew = append(crew, domain.CrewMember{
			ID:         c.ID,
			Name:       c.Name,
			Job:        c.Job,
			Department: c.Department,
		})
	}
	return &domain.Credits{Cast: cast, Crew: crew}
}

func mapImages(dto imagesDTO) *domain.ImageSet {
	return &domain.ImageSet{
		Backdrops: mapImageList(dto.Backdrops),
		Posters:   mapImageList(dto.Posters),
	}
}

func mapImageList(dtos []imageDTO) []domain.Image {
	images := make([]domain.Image, 0, len(dtos))
	for _, img := range dtos {
		images = append(images, domain.Image{
			FilePath:    img.FilePath,
			Width:       img.Width,
			Height:      img.Height,
			VoteAverage: img.VoteAverage,
		})
	}
	return images
}

func mapVideos(dto videosDTO) []domain.Video {
	videos := make([]domain.Video, 0, len(dto.Results))
	for _, v := range dto.Results {
		videos = append(videos, domain.Video{
			ID:       v.ID,
			Key:      v.Key,
			Name:     v.Name,
			Site:     v.Site,
			Type:     v.Type,
			Official: v.Official,
		})
	}
	return videos
}
