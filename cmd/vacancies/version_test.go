package main

import (
	rdebug "runtime/debug"
	"testing"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name   string
		linked string
		info   *rdebug.BuildInfo
		want   string
	}{
		{"linker flag wins", "v1.2.3", &rdebug.BuildInfo{Main: rdebug.Module{Version: "v0.9.0"}}, "v1.2.3"},
		{"no build info", "", nil, "dev"},
		{"module version", "", &rdebug.BuildInfo{Main: rdebug.Module{Version: "v0.9.0"}}, "v0.9.0"},
		{"devel without vcs", "", &rdebug.BuildInfo{Main: rdebug.Module{Version: "(devel)"}}, "dev"},
		{
			"vcs revision",
			"",
			&rdebug.BuildInfo{
				Main: rdebug.Module{Version: "(devel)"},
				Settings: []rdebug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			"dev+0123456789ab-dirty",
		},
	}
	for _, tc := range tests {
		if got := resolveVersion(tc.linked, tc.info); got != tc.want {
			t.Errorf("%s: resolveVersion = %q, want %q", tc.name, got, tc.want)
		}
	}
}
