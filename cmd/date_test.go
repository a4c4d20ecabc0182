package cmd

import "testing"

func TestParseYearFromArgs(t *testing.T) {
	cases := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, 0, false},
		{[]string{}, 0, false},
		{[]string{"2023"}, 2023, false},
		{[]string{"1999"}, 1999, false},
		{[]string{"23"}, 0, true},
		{[]string{"20235"}, 0, true},
		{[]string{"twenty"}, 0, true},
		{[]string{"-2023"}, 0, true},
	}

	for _, c := range cases {
		got, err := parseYearFromArgs(c.args)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseYearFromArgs(%v) succeeded, want error", c.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseYearFromArgs(%v): %v", c.args, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseYearFromArgs(%v) = %d, want %d", c.args, got, c.want)
		}
	}
}
