package service

import "github.com/aidar/dsc-roster/internal/domain"

// ClubService serves the static club description
type ClubService struct {
	info domain.ClubInfo
}

// NewClubService creates a ClubService with the club's published description
func NewClubService() *ClubService {
	return &ClubService{
		info: domain.ClubInfo{
			Name:        "Developer Students Club",
			Institute:   "SRM Institute of Science and Technology",
			Campus:      "Ramapuram",
			Description: "Empowering the next generation of developers through collaborative learning, innovative projects, and community building.",
			Mission:     "Developer Students Club at SRM IST Ramapuram is a community-driven initiative that aims to help students bridge the gap between theory and practice.",
			Activities: []string{
				"Workshops and technical sessions",
				"Hackathons and coding competitions",
				"Study jams and collaborative learning",
				"Open-source contributions",
				"Industry mentorship programs",
			},
		},
	}
}

// Info returns a copy of the club description
func (s *ClubService) Info() domain.ClubInfo {
	info := s.info
	info.Activities = append([]string(nil), s.info.Activities...)
	return info
}
