package gateway

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bobbot/osrs-api/internal/models"
)

// SlayerTasks returns the task table of one of the supported masters.
// The master name is matched case-insensitively.
func (s *Service) SlayerTasks(master string) ([]models.SlayerTask, error) {
	id := strings.ToLower(master)
	if !slices.Contains(SlayerMasters, id) {
		return nil, ErrSlayerMasterNotFound
	}

	tasks, err := s.data.GetSlayerTasks(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load slayer tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.SlayerTask{}
	}
	return tasks, nil
}
