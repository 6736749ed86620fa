package client

import (
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// Every call is dispatched as a GET; mutating operations tunnel the intended
// verb through the _method parameter, which is how the remote API expects
// GET-only clients to behave.
const methodParam = "_method"

// requireArgs guards operation arity before the tail is interpolated.
func requireArgs(resource, operation string, want int, args []string) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s.%s takes %d argument(s), got %d",
			surveygizmo.ErrOperationArguments, resource, operation, want, len(args))
	}

	return nil
}

func methodValues(method string) url.Values {
	return url.Values{methodParam: []string{method}}
}

// registerBuiltins installs the default resource operations. Each operation
// is a pure (tail, params) producer; the dispatcher wraps them with the
// execution pipeline at registration time.
func registerBuiltins(api *API) {
	api.Register("survey", surveyOperations())
	api.Register("surveyresponse", surveyResponseOperations())
	api.Register("surveycampaign", surveyCampaignOperations())
	api.Register("surveyquestion", surveyQuestionOperations())
	api.Register("surveypage", surveyPageOperations())
	api.Register("contactlist", contactListOperations())
	api.Register("accountteams", accountTeamsOperations())
}

func surveyOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "list", 0, args); err != nil {
				return "", nil, err
			}

			return "survey", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "get", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0], nil, nil
		},
		"create": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "create", 2, args); err != nil {
				return "", nil, err
			}

			params := methodValues("PUT")
			params.Set("title", args[0])
			params.Set("type", args[1])

			return "survey", params, nil
		},
		"update": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "update", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0], methodValues("POST"), nil
		},
		"copy": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "copy", 2, args); err != nil {
				return "", nil, err
			}

			params := methodValues("PUT")
			params.Set("copy", args[0])
			params.Set("title", args[1])

			return "survey", params, nil
		},
		"delete": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("survey", "delete", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0], methodValues("DELETE"), nil
		},
	}
}

func surveyResponseOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyresponse", "list", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyresponse", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyresponse", "get", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyresponse/" + args[1], nil, nil
		},
		"create": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyresponse", "create", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyresponse", methodValues("PUT"), nil
		},
		"update": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyresponse", "update", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyresponse/" + args[1], methodValues("POST"), nil
		},
		"delete": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyresponse", "delete", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyresponse/" + args[1], methodValues("DELETE"), nil
		},
	}
}

func surveyCampaignOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveycampaign", "list", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveycampaign", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveycampaign", "get", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveycampaign/" + args[1], nil, nil
		},
		"create": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveycampaign", "create", 3, args); err != nil {
				return "", nil, err
			}

			params := methodValues("PUT")
			params.Set("name", args[1])
			params.Set("type", args[2])

			return "survey/" + args[0] + "/surveycampaign", params, nil
		},
		"update": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveycampaign", "update", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveycampaign/" + args[1], methodValues("POST"), nil
		},
		"delete": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveycampaign", "delete", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveycampaign/" + args[1], methodValues("DELETE"), nil
		},
	}
}

func surveyQuestionOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyquestion", "list", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyquestion", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveyquestion", "get", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveyquestion/" + args[1], nil, nil
		},
	}
}

func surveyPageOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveypage", "list", 1, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveypage", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("surveypage", "get", 2, args); err != nil {
				return "", nil, err
			}

			return "survey/" + args[0] + "/surveypage/" + args[1], nil, nil
		},
	}
}

func contactListOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("contactlist", "list", 0, args); err != nil {
				return "", nil, err
			}

			return "contactlist", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("contactlist", "get", 1, args); err != nil {
				return "", nil, err
			}

			return "contactlist/" + args[0], nil, nil
		},
		"create": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("contactlist", "create", 1, args); err != nil {
				return "", nil, err
			}

			params := methodValues("PUT")
			params.Set("list_name", args[0])

			return "contactlist", params, nil
		},
	}
}

func accountTeamsOperations() map[string]surveygizmo.Operation {
	return map[string]surveygizmo.Operation{
		"list": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("accountteams", "list", 0, args); err != nil {
				return "", nil, err
			}

			return "accountteams", nil, nil
		},
		"get": func(args ...string) (string, url.Values, error) {
			if err := requireArgs("accountteams", "get", 1, args); err != nil {
				return "", nil, err
			}

			return "accountteams/" + args[0], nil, nil
		},
	}
}
