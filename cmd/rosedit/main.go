package main

// Command-line roster editor for NBA 2K14-style .ROS save files.
//
// example usage:
//
// rosedit bind roster.ros
// rosedit dump roster.ros
// rosedit get-rating roster.ros 1 5
// rosedit set-rating roster.ros 1 5 95
// rosedit get-tendency roster.ros 1 5
// rosedit watch

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"rosedit/player"
)

func main() {
	if err := main2(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	logger, sessionID, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("session_id", sessionID))

	arg := "help"
	if len(os.Args) < 2 {
		fmt.Println("No args detected - falling back to \"help\", since you clearly need it...")
	} else {
		arg = os.Args[1]
	}

	switch arg {
	case "help":
		printHelp()
		return nil

	case "bind":
		if len(os.Args) < 3 {
			return fmt.Errorf("bind what?  filename expected")
		}
		return cmdBind(logger, os.Args[2])

	case "dump":
		if len(os.Args) < 3 {
			return fmt.Errorf("dump what?  filename expected")
		}
		return cmdDump(logger, os.Args[2])

	case "get-rating":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-rating FILE PLAYER_INDEX RATING_ID")
		}
		return cmdGetAttribute(logger, "rating", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return p.GetRating(id) })

	case "set-rating":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-rating FILE PLAYER_INDEX RATING_ID DISPLAY_VALUE")
		}
		return cmdSetAttribute(logger, "rating", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetRating(id, value) })

	case "get-tendency":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-tendency FILE PLAYER_INDEX TENDENCY_ID")
		}
		return cmdGetAttribute(logger, "tendency", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return p.GetTendency(id) })

	case "set-tendency":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-tendency FILE PLAYER_INDEX TENDENCY_ID VALUE")
		}
		return cmdSetAttribute(logger, "tendency", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetTendency(id, value) })

	case "get-hot-zone":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-hot-zone FILE PLAYER_INDEX ZONE_ID")
		}
		return cmdGetAttribute(logger, "hot_zone", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return p.GetHotZone(id) })

	case "set-hot-zone":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-hot-zone FILE PLAYER_INDEX ZONE_ID VALUE")
		}
		return cmdSetAttribute(logger, "hot_zone", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetHotZone(id, value) })

	case "get-sig-skill":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-sig-skill FILE PLAYER_INDEX SLOT")
		}
		return cmdGetAttribute(logger, "sig_skill", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return p.GetSigSkill(id) })

	case "set-sig-skill":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-sig-skill FILE PLAYER_INDEX SLOT VALUE")
		}
		return cmdSetAttribute(logger, "sig_skill", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetSigSkill(id, value) })

	case "get-gear":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-gear FILE PLAYER_INDEX GEAR_ID")
		}
		return cmdGetAttribute(logger, "gear", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return int(p.GetGear(id)) })

	case "set-gear":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-gear FILE PLAYER_INDEX GEAR_ID VALUE")
		}
		return cmdSetAttribute(logger, "gear", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetGear(id, uint32(value)) })

	case "get-animation":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-animation FILE PLAYER_INDEX ANIMATION_ID")
		}
		return cmdGetAttribute(logger, "animation", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return p.GetAnimation(id) })

	case "set-animation":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-animation FILE PLAYER_INDEX ANIMATION_ID VALUE")
		}
		return cmdSetAttribute(logger, "animation", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetAnimation(id, value) })

	case "get-vital":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: rosedit get-vital FILE PLAYER_INDEX VITAL_ID")
		}
		return cmdGetAttribute(logger, "vital", os.Args[2], os.Args[3], os.Args[4],
			func(p player.View, id int) int { return int(p.GetVital(id)) })

	case "set-vital":
		if len(os.Args) < 6 {
			return fmt.Errorf("usage: rosedit set-vital FILE PLAYER_INDEX VITAL_ID VALUE")
		}
		return cmdSetAttribute(logger, "vital", os.Args[2], os.Args[3], os.Args[4], os.Args[5],
			func(p player.View, id, value int) { p.SetVital(id, uint32(value)) })

	case "watch":
		dir := "."
		if configured := defaultWatchDir(); configured != "" {
			dir = configured
		}
		if len(os.Args) >= 3 {
			dir = os.Args[2]
		}
		return cmdWatch(logger, dir)

	default:
		return fmt.Errorf("unknown command %q, try \"help\"", arg)
	}
}

func printHelp() {
	helpText := []string{
		"NBA 2K14 Roster Editor",
		"",
		"Commands:",
		"  help                                        display this text",
		"  bind FILE                                   load FILE and log the discovered table anchors/counts",
		"  dump FILE                                   list discovered tables and print every player/team",
		"  get-rating FILE PLAYER_INDEX ID             print a player's rating",
		"  set-rating FILE PLAYER_INDEX ID VALUE       set a player's rating, then recalculate the checksum",
		"  get-tendency/set-tendency       ...          same shape, for tendency ids",
		"  get-hot-zone/set-hot-zone       ...          same shape, for hot-zone ids",
		"  get-sig-skill/set-sig-skill     ...          same shape, for signature-skill slots",
		"  get-gear/set-gear               ...          same shape, for gear ids",
		"  get-animation/set-animation     ...          same shape, for animation ids",
		"  get-vital/set-vital             ...          same shape, for vital ids",
		"  watch DIR                                   watch DIR for .ROS writes and log table discovery",
		"",
		"Config:",
		"  an optional rosedit.ini in the current directory can set:",
		"    [roster]    dir=...            a default watch directory",
		"    [discovery] cfid_ceiling=...    override the plausible-CFID ceiling",
		"    [discovery] anchor_depth=...    override the player-table anchor scan depth",
	}
	for _, line := range helpText {
		fmt.Println(line)
	}
}
