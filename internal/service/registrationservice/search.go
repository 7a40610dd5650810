package registrationservice

import (
	"context"
	"sort"
	"strings"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/pkg/fuzzy"
)

// DefaultMatchThreshold is the façade default for paid-player searches.
const DefaultMatchThreshold = 0.6

// firstNameBonus is granted when the query equals the player's first name
// verbatim, so "ana" finds "Ana Martínez" ahead of looser matches.
const firstNameBonus = 0.9

// SearchPaidPlayers returns the players who paid their fee for a tournament.
// Without a query every paid player comes back with score 1 in name order;
// with one, players are fuzzily matched against it and only those at or
// above the threshold survive, ordered by score then name.
func (s *Service) SearchPaidPlayers(ctx context.Context, tournamentID int64, nameQuery string, matchThreshold float64, limit int) (*domain.Tournament, []domain.PaidPlayer, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}
	if tournament == nil {
		return nil, nil, ErrTournamentNotFound
	}

	paid, err := s.repo.ListPaid(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}

	var results []domain.PaidPlayer
	if nameQuery == "" {
		for _, pp := range paid {
			pp.MatchScore = 1.0
			results = append(results, pp)
		}
	} else {
		for _, pp := range paid {
			score := matchScore(nameQuery, pp.Player.Name)
			if score < matchThreshold {
				continue
			}
			pp.MatchScore = score
			results = append(results, pp)
		}
		sort.Slice(results, func(i, j int) bool {
			if results[i].MatchScore != results[j].MatchScore {
				return results[i].MatchScore > results[j].MatchScore
			}
			return results[i].Player.Name < results[j].Player.Name
		})
	}

	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return tournament, results, nil
}

// matchScore is the best of the whole-name score, the best per-token score
// and the fixed first-name bonus.
func matchScore(query, name string) float64 {
	score := fuzzy.Score(query, name)

	tokens := strings.Fields(name)
	for _, token := range tokens {
		if s := fuzzy.Score(query, token); s > score {
			score = s
		}
	}

	if len(strings.Fields(query)) == 1 && len(tokens) > 0 &&
		strings.EqualFold(query, tokens[0]) && firstNameBonus > score {
		score = firstNameBonus
	}
	return score
}
