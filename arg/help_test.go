package arg

import (
	"strings"
	"testing"
)

func helpParser(t *testing.T) *Parser {
	t.Helper()

	p := New("greet",
		WithUsage("greet [options]"),
		WithDescription("Greets the given name."),
		WithEpilog("Report bugs upstream."),
	)

	if err := p.AddPositional('n', "name", true, 1, "", "Name to greet"); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.AddKeyValue('c', "color", false, "plain", "Output color"); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if err := p.AddFlag(0, "shout", "Print in uppercase"); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	return p
}

func TestHelp_Sections(t *testing.T) {
	help := helpParser(t).Help()

	for _, want := range []string{
		"greet [options]",
		"Greets the given name.",
		"Report bugs upstream.",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("expected help to contain %q:\n%s", want, help)
		}
	}
}

func TestHelp_OneLinePerArgument(t *testing.T) {
	help := helpParser(t).Help()

	tests := []struct {
		name string
		want []string
	}{
		{
			name: "flag line",
			want: []string{"-h, --help", "Show this help message"},
		},
		{
			name: "positional line with annotation",
			want: []string{"-n, --name", "[required]", "Name to greet"},
		},
		{
			name: "keyvalue line with default",
			want: []string{"-c, --color", "Output color", "[default: plain]"},
		},
		{
			name: "flag without short symbol",
			want: []string{"--shout", "Print in uppercase"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(help, want) {
					t.Errorf("expected help to contain %q:\n%s", want, help)
				}
			}
		})
	}
}

func TestHelp_DeclarationOrder(t *testing.T) {
	help := helpParser(t).Help()

	prev := -1

	for _, name := range []string{"--help", "--name", "--color", "--shout"} {
		idx := strings.Index(help, name)
		if idx < 0 {
			t.Fatalf("expected help to contain %q:\n%s", name, help)
		}

		if idx < prev {
			t.Errorf("expected %q after previous argument:\n%s", name, help)
		}

		prev = idx
	}
}

func TestHelp_FlagLineHasNoAnnotation(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	if err := p.AddFlag('v', "verbose", "Enable verbose mode"); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	if help := p.Help(); strings.Contains(help, "[") {
		t.Errorf("expected no annotation on flag lines:\n%s", help)
	}
}

func TestHelp_RequiredAndDefaultAnnotation(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	if err := p.AddPositional('o', "output", true, 1, "out.txt", "Output file"); err != nil {
		t.Fatalf("declare error: %v", err)
	}

	help := p.Help()
	if !strings.Contains(help, "[required, default: out.txt]") {
		t.Errorf("expected combined annotation:\n%s", help)
	}
}

func TestWriteHelp(t *testing.T) {
	p := helpParser(t)

	var b strings.Builder

	p.WriteHelp(&b)

	if b.String() != p.Help() {
		t.Error("expected WriteHelp output to match Help")
	}
}
