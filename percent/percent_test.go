package percent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsContain(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		in   string
		out  string
	}{
		{"c0 control", C0Control, "\x00\x1f\x7f", ""},
		{"c0 keeps space", C0Control, " ", " "},
		{"fragment", Fragment, " \"<>`", ""},
		{"fragment keeps hash", Fragment, "#", "#"},
		{"query", Query, " \"#<>", ""},
		{"query keeps quote", Query, "'", "'"},
		{"special query", SpecialQuery, "'", ""},
		{"path", Path, "?`{}", ""},
		{"path keeps slash", Path, "/", "/"},
		{"userinfo", Userinfo, "/:;=@[\\]^|", ""},
		{"component", Component, "$%&+,", ""},
		{"component keeps unreserved", Component, "-._~!*'()", "-._~!*'()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.in); i++ {
				assert.True(t, tt.set.Contains(tt.in[i]), "expected %q in %s", tt.in[i], tt.set.Name())
			}
			for i := 0; i < len(tt.out); i++ {
				assert.False(t, tt.set.Contains(tt.out[i]), "expected %q not in %s", tt.out[i], tt.set.Name())
			}
		})
	}
}

func TestSetsNest(t *testing.T) {
	chain := []*Set{C0Control, Query, Path, Userinfo, Component}
	for i := 1; i < len(chain); i++ {
		for b := 0; b < 0x80; b++ {
			if chain[i-1].Contains(byte(b)) {
				assert.True(t, chain[i].Contains(byte(b)), "%s should include %q from %s", chain[i].Name(), b, chain[i-1].Name())
			}
		}
	}
}

func TestNonASCIIAlwaysEncoded(t *testing.T) {
	for _, set := range []*Set{C0Control, Fragment, Query, SpecialQuery, Path, Userinfo, Component} {
		assert.True(t, set.Contains(0x80))
		assert.True(t, set.Contains(0xFF))
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		set  *Set
		want string
	}{
		{"unchanged", "abc", Path, "abc"},
		{"space in path", "a b", Path, "a%20b"},
		{"utf8", "é", C0Control, "%C3%A9"},
		{"uppercase hex", "\x1b", C0Control, "%1B"},
		{"userinfo", "user:pa@ss", Userinfo, "user%3Apa%40ss"},
		{"percent in component", "100%", Component, "100%25"},
		{"percent kept in path", "100%", Path, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in, tt.set))
		})
	}
}

func TestAppendRune(t *testing.T) {
	assert.Equal(t, "a", string(AppendRune(nil, 'a', Path)))
	assert.Equal(t, "%E2%82%AC", string(AppendRune(nil, '€', Path)))
	assert.Equal(t, "%F0%9F%98%80", string(AppendRune(nil, '😀', Fragment)))
	assert.Equal(t, "%EF%BF%BD", string(AppendRune(nil, 0xD800, Path)))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"escape", "a%20b", "a b"},
		{"lowercase hex", "%c3%a9", "é"},
		{"invalid hex", "%zz", "%zz"},
		{"truncated", "abc%4", "abc%4"},
		{"lone percent", "%", "%"},
		{"mixed", "%41%%42", "A%B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeString(tt.in))
		})
	}
}

func TestValidEscapeAt(t *testing.T) {
	assert.True(t, ValidEscapeAt("%41", 0))
	assert.False(t, ValidEscapeAt("%4", 0))
	assert.False(t, ValidEscapeAt("%g1", 0))
	assert.False(t, ValidEscapeAt("a41", 0))
}

func TestEncodeWithEncoding(t *testing.T) {
	sjis, err := LookupEncoding("shift_jis")
	require.NoError(t, err)
	assert.Equal(t, "%82%A0", EncodeWithEncoding("あ", sjis, SpecialQuery))

	latin1, err := LookupEncoding("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "%E9", EncodeWithEncoding("é", latin1, Query))
	assert.Equal(t, "%26%2312354%3B", EncodeWithEncoding("あ", latin1, Component))

	assert.Equal(t, "%C3%A9", EncodeWithEncoding("é", nil, Query))
}

func TestEncodeWithEncodingUnmappable(t *testing.T) {
	latin1, err := LookupEncoding("windows-1252")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		set  *Set
		want string
	}{
		{"query", "x=\U0001F600", Query, "x=%26%23128512%3B"},
		{"special query", "x=\U0001F600", SpecialQuery, "x=%26%23128512%3B"},
		{"literal ampersand kept", "a=1&b=あ;", Query, "a=1&b=%26%2312354%3B;"},
		{"mixed", "éあé", SpecialQuery, "%E9%26%2312354%3B%E9"},
		{"consecutive", "ああ", Query, "%26%2312354%3B%26%2312354%3B"},
		{"component", "あ", Component, "%26%2312354%3B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeWithEncoding(tt.in, latin1, tt.set))
		})
	}
}

func TestLookupEncodingUTF16(t *testing.T) {
	for _, label := range []string{"utf-16le", "utf-16be", "unicodefffe"} {
		enc, err := LookupEncoding(label)
		require.NoError(t, err, label)
		assert.True(t, IsUTF8(enc), label)
	}

	sjis, err := LookupEncoding("shift_jis")
	require.NoError(t, err)
	assert.False(t, IsUTF8(sjis))
}

func TestIsUTF8(t *testing.T) {
	utf8Enc, err := LookupEncoding("utf8")
	require.NoError(t, err)
	assert.True(t, IsUTF8(utf8Enc))
	assert.True(t, IsUTF8(nil))

	latin1, err := LookupEncoding("latin1")
	require.NoError(t, err)
	assert.False(t, IsUTF8(latin1))
}
