package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Ceeox/proxer-go/api"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().BoolP("check", "c", false, "Fail when the envelope reports an error")
	callCmd.Example = `  proxer call info entry id=53
  proxer call list entrysearch name=naruto limit=5 --path 'data.#.name'`
}

var callCmd = endpoint("call <class> <function> [name=value]...", "Send a raw request and print the response envelope", cobra.MinimumNArgs(2), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
	params, err := parseParams(args[2:])
	if err != nil {
		return nil, err
	}

	raw, err := api.Raw(ctx, s, args[0], args[1], params)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(raw) {
		return nil, &api.DecodeError{Size: len(raw), Err: errors.New("response is not json")}
	}

	if lo.Must(cmd.Flags().GetBool("check")) {
		if err := checkEnvelope(raw); err != nil {
			return nil, err
		}
	}

	return json.RawMessage(raw), nil
})

// parseParams turns name=value pairs into parameters, keeping their order.
func parseParams(pairs []string) (api.Params, error) {
	params := make(api.Params, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", pair)
		}
		params = append(params, api.Required(name, value))
	}
	return params, nil
}

// checkEnvelope classifies a raw envelope without decoding its payload.
func checkEnvelope(raw []byte) error {
	envelope, err := api.DecodeEmpty(raw)
	if err != nil {
		return err
	}

	return api.Classify(envelope.Error, envelope.Code, envelope.Message)
}
