package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tcfw/uriref/pkg/uri"
)

type renderFunc func(uri.Parts) (string, error)

func renderer(format string) (renderFunc, error) {
	switch format {
	case "", "text":
		return renderText, nil
	case "json":
		return renderJSON, nil
	case "msgpack":
		return renderMsgpack, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

func renderText(p uri.Parts) (string, error) {
	b := &strings.Builder{}

	fmt.Fprintf(b, "scheme=%q", p.Scheme)
	if p.UserInfo != "" {
		fmt.Fprintf(b, " userinfo=%q", p.UserInfo)
	}
	fmt.Fprintf(b, " host=%q", p.Host)
	if p.HasPort {
		fmt.Fprintf(b, " port=%d", p.Port)
	}
	fmt.Fprintf(b, " path=%q", p.Path)
	if p.Query != "" {
		fmt.Fprintf(b, " query=%q", p.Query)
	}
	if p.Fragment != "" {
		fmt.Fprintf(b, " fragment=%q", p.Fragment)
	}

	return b.String(), nil
}

func renderJSON(p uri.Parts) (string, error) {
	out, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// renderMsgpack emits the msgpack encoding base64 wrapped so it stays
// printable on a console line.
func renderMsgpack(p uri.Parts) (string, error) {
	out, err := msgpack.Marshal(p)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(out), nil
}
