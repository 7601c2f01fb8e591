package utils

import "testing"

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseStringAs_Primitives(t *testing.T) {
	str, err := ParseStringAs[string]("hello world")
	if err != nil || str != "hello world" {
		t.Errorf("ParseStringAs[string] = (%q, %v), want (%q, nil)", str, err, "hello world")
	}

	num, err := ParseStringAs[int]("42")
	if err != nil || num != 42 {
		t.Errorf("ParseStringAs[int] = (%d, %v), want (42, nil)", num, err)
	}

	flag, err := ParseStringAs[bool]("true")
	if err != nil || !flag {
		t.Errorf("ParseStringAs[bool] = (%v, %v), want (true, nil)", flag, err)
	}

	ratio, err := ParseStringAs[float64]("3.14")
	if err != nil || ratio != 3.14 {
		t.Errorf("ParseStringAs[float64] = (%v, %v), want (3.14, nil)", ratio, err)
	}

	if _, err := ParseStringAs[int]("not a number"); err == nil {
		t.Error("ParseStringAs[int] on garbage input returned nil error")
	}
}

func TestParseStringAs_ValidJSON(t *testing.T) {
	got, err := ParseStringAs[person](`{"name":"John","age":30}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "John" || got.Age != 30 {
		t.Errorf("parsed = %+v, want {John 30}", got)
	}
}

// TestParseStringAs_RepairsBrokenJSON covers the usual LLM output defects:
// single quotes, unquoted keys, markdown code fences, and trailing commas.
// All of these must be repaired and decoded rather than rejected.
func TestParseStringAs_RepairsBrokenJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "single quotes and unquoted keys", input: `{name: 'John', age: 30}`},
		{name: "markdown code fence", input: "```json\n{\"name\":\"John\",\"age\":30}\n```"},
		{name: "trailing comma", input: `{"name":"John","age":30,}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseStringAs[person](testCase.input)
			if err != nil {
				t.Fatalf("expected repaired parse, got error: %v", err)
			}
			if got.Name != "John" || got.Age != 30 {
				t.Errorf("parsed = %+v, want {John 30}", got)
			}
		})
	}
}

func TestParseStringAs_Slice(t *testing.T) {
	got, err := ParseStringAs[[]int](`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("parsed = %v, want [1 2 3]", got)
	}
}

func TestParseStringAs_UnrepairableInput(t *testing.T) {
	// Repair can fix a lot, but a plain sentence decoded into a struct must
	// still fail rather than silently produce a zero value from garbage.
	if _, err := ParseStringAs[person](`42`); err == nil {
		t.Error("expected error decoding a bare number into a struct, got nil")
	}
}
