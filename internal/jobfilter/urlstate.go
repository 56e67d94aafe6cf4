package jobfilter

import (
	"net/url"
)

// EncodeQuery renders the state as a shareable query string. Defaults are
// omitted so the neutral state encodes to "".
func EncodeQuery(state State) string {
	state = state.Normalize()
	values := url.Values{}

	if state.Search != "" {
		values.Set("q", state.Search)
	}
	if state.Role != RoleAll {
		values.Set("role", state.Role)
	}
	for _, tag := range state.Tags {
		values.Add("tags[]", tag)
	}
	if state.Location != "" {
		values.Set("location", state.Location)
	}
	if state.Accommodation != AccommodationAll {
		values.Set("accommodation", state.Accommodation)
	}
	if state.Sort == SortOldest {
		values.Set("sort", state.Sort)
	}

	return values.Encode()
}

// DecodeQuery parses a query string back into a normalized state. Unknown
// parameters are ignored; a malformed query yields the default state.
func DecodeQuery(query string) State {
	values, err := url.ParseQuery(query)
	if err != nil {
		return DefaultState()
	}

	state := State{
		Search:        values.Get("q"),
		Role:          values.Get("role"),
		Tags:          values["tags[]"],
		Location:      values.Get("location"),
		Accommodation: values.Get("accommodation"),
		Sort:          values.Get("sort"),
	}
	return state.Normalize()
}
