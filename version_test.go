package zoneterm

import "testing"

func TestVersion_Embedded(t *testing.T) {
	if got := Version(); got == devVersion || !IsSemver(got) {
		t.Fatalf("embedded version must be a release: got %q", got)
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
	if got, want := UserAgent(), "zoneterm/"+Version(); got != want {
		t.Fatalf("user agent: got %q, want %q", got, want)
	}
}

func TestResolveVersion(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "0.1.0\n", want: "0.1.0"},
		{raw: " 1.2.3-rc.1 ", want: "1.2.3-rc.1"},
		{raw: "", want: devVersion},
		{raw: "v1.2.3", want: devVersion},
		{raw: "1.2", want: devVersion},
	}

	for _, tc := range cases {
		if got := resolveVersion(tc.raw); got != tc.want {
			t.Fatalf("resolveVersion(%q): got %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "01.2.3", want: false},
		{version: "1.2.3.4", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
