package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"rosedit"
	"rosedit/fields"
	"rosedit/player"
)

func loadRoster(path string) ([]byte, *rosedit.Editor, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ed, err := rosedit.NewWithConfig(buf, discoveryConfig())
	if err != nil {
		return nil, nil, err
	}
	return buf, ed, nil
}

// cmdBind loads path, runs discovery, and logs the discovered anchors and
// counts without printing anything — the host-layer analogue of binding a
// savefile before any command acts on it.
func cmdBind(logger *zap.Logger, path string) error {
	_, ed, err := loadRoster(path)
	if err != nil {
		return err
	}
	logger.Info("bound roster",
		zap.String("file", path),
		zap.Int("player_count", ed.PlayerCount()),
		zap.Int("team_count", ed.TeamCount()),
	)
	return nil
}

func cmdDump(logger *zap.Logger, path string) error {
	_, ed, err := loadRoster(path)
	if err != nil {
		return err
	}
	logger.Info("discovered roster tables",
		zap.String("file", path),
		zap.Int("player_count", ed.PlayerCount()),
		zap.Int("team_count", ed.TeamCount()),
	)

	fmt.Printf("players: %d\nteams: %d\n", ed.PlayerCount(), ed.TeamCount())

	for i := 0; i < ed.PlayerCount(); i++ {
		p, err := ed.Player(i)
		if err != nil {
			return err
		}
		cfid, err := p.CFID()
		if err != nil {
			return err
		}
		fmt.Printf("player %d: cfid=%d ratings=", i, cfid)
		for id := 0; id < len(fields.RatingOffsets); id++ {
			if id > 0 {
				fmt.Print(",")
			}
			fmt.Print(p.GetRating(id))
		}
		fmt.Print(" tendencies=")
		for id := 0; id < fields.TendencyCount; id++ {
			if id > 0 {
				fmt.Print(",")
			}
			fmt.Print(p.GetTendency(id))
		}
		fmt.Println()
	}

	for i := 0; i < ed.TeamCount(); i++ {
		tm, err := ed.Team(i)
		if err != nil {
			return err
		}
		city, err := tm.City()
		if err != nil {
			return err
		}
		name, err := tm.Name()
		if err != nil {
			return err
		}
		fmt.Printf("team %d: %s %s roster=", i, city, name)
		for slot := 0; slot < fields.TeamRosterSlots; slot++ {
			if slot > 0 {
				fmt.Print(",")
			}
			fmt.Print(tm.RosterPlayerID(slot))
		}
		fmt.Println()
	}
	return nil
}

// attributeGetter/attributeSetter let one pair of generic CLI command
// bodies serve every per-attribute-kind subcommand (rating, tendency,
// hot-zone, sig-skill, gear, animation, vital), which all share the same
// load -> index -> get/set(id, value) -> save shape.
type attributeGetter func(p player.View, id int) int
type attributeSetter func(p player.View, id, value int)

func cmdGetAttribute(logger *zap.Logger, label, path, playerIndexArg, idArg string, get attributeGetter) error {
	playerIndex, err := strconv.Atoi(playerIndexArg)
	if err != nil {
		return fmt.Errorf("player index: %w", err)
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("%s id: %w", label, err)
	}

	_, ed, err := loadRoster(path)
	if err != nil {
		return err
	}
	p, err := ed.Player(playerIndex)
	if err != nil {
		return err
	}
	value := get(p, id)
	logger.Info("read "+label, zap.Int("player_index", playerIndex), zap.Int(label+"_id", id), zap.Int("value", value))
	fmt.Println(value)
	return nil
}

func cmdSetAttribute(logger *zap.Logger, label, path, playerIndexArg, idArg, valueArg string, set attributeSetter) error {
	playerIndex, err := strconv.Atoi(playerIndexArg)
	if err != nil {
		return fmt.Errorf("player index: %w", err)
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("%s id: %w", label, err)
	}
	value, err := strconv.Atoi(valueArg)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}

	buf, ed, err := loadRoster(path)
	if err != nil {
		return err
	}
	p, err := ed.Player(playerIndex)
	if err != nil {
		return err
	}
	set(p, id, value)
	if err := ed.SaveAndRecalculateChecksum(); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return err
	}
	logger.Info("wrote "+label, zap.Int("player_index", playerIndex), zap.Int(label+"_id", id), zap.Int("value", value))
	fmt.Println("saved")
	return nil
}
