package main

import (
	"gopkg.in/ini.v1"

	"rosedit/discovery"
)

// configPath is the ini file cmd/rosedit reads its overrides from. It is a
// plain variable, not a flag, deliberately mirroring privedit.go's
// get_dir()-style "evil global variable" configuration.
var configPath = "rosedit.ini"

// defaultWatchDir reads rosedit.ini for a [roster] dir key, the way
// priv_ach reads priv_ach.ini for its save directory. A missing or
// unreadable ini file is not an error: the caller's own default applies.
func defaultWatchDir() string {
	cfg, err := ini.Load(configPath)
	if err != nil {
		return ""
	}
	return cfg.Section("roster").Key("dir").String()
}

// discoveryConfig reads rosedit.ini for a [discovery] section overriding
// DiscoverPlayers/DiscoverTeams's anchor depth and CFID ceiling, so a
// future format revision's table shape doesn't need a rebuild. A missing
// ini file, section, or key falls back to discovery.DefaultConfig().
func discoveryConfig() discovery.Config {
	cfg := discovery.DefaultConfig()

	file, err := ini.Load(configPath)
	if err != nil {
		return cfg
	}
	section := file.Section("discovery")
	if key, err := section.Key("cfid_ceiling").Int(); err == nil {
		cfg.CFIDCeiling = key
	}
	if key, err := section.Key("anchor_depth").Int(); err == nil {
		cfg.AnchorDepth = key
	}
	return cfg
}
