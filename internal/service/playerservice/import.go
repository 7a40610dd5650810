package playerservice

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mpalomar/ultimateteam/internal/domain"
)

// header aliases, case-insensitive, English and Spanish.
var (
	nameAliases  = map[string]bool{"name": true, "nombre": true}
	phoneAliases = map[string]bool{"phone": true, "telefono": true}
	emailAliases = map[string]bool{"email": true}
)

// ImportPlayers upserts players from a header-driven CSV file. One bad row
// never aborts the rest: failures come back as messages next to the rows
// that succeeded.
func (s *Service) ImportPlayers(ctx context.Context, csvPath string) ([]domain.Player, []string, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read CSV header: %w", err)
	}

	nameIdx, phoneIdx, emailIdx := -1, -1, -1
	for i, column := range header {
		switch key := strings.ToLower(strings.TrimSpace(column)); {
		case nameAliases[key]:
			nameIdx = i
		case phoneAliases[key]:
			phoneIdx = i
		case emailAliases[key]:
			emailIdx = i
		}
	}

	var (
		imported []domain.Player
		errs     []string
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		name := fieldAt(record, nameIdx)
		phone := fieldAt(record, phoneIdx)
		if name == "" || phone == "" {
			errs = append(errs, fmt.Sprintf("line %d: row missing required fields (name and phone): %v", line, record))
			continue
		}
		var email *string
		if value := fieldAt(record, emailIdx); value != "" {
			email = &value
		}

		player, err := s.upsertPlayer(ctx, name, phone, email)
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: error importing %q: %v", line, name, err))
			continue
		}
		imported = append(imported, *player)
	}

	return imported, errs, nil
}

func (s *Service) upsertPlayer(ctx context.Context, name, phone string, email *string) (*domain.Player, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.repo.Update(ctx, name, phone, email); err != nil {
			return nil, err
		}
		existing.Phone = phone
		existing.Email = email
		return existing, nil
	}
	return s.AddPlayer(ctx, name, phone, email)
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
