// Package jules provides a typed Go client for the Jules API.
//
// Jules runs delegated coding sessions against connected repositories. This
// package covers the full resource surface — sessions, activities, and
// sources — over authenticated HTTP+JSON, and adapts the API's cursor-based
// pagination into lazy Go iterators.
//
// # Basic Usage
//
//	client := jules.NewClient(os.Getenv("JULES_API_KEY"))
//
//	session, err := client.CreateSession(ctx, &jules.Session{
//	    Prompt: "Fix the flaky integration test",
//	    SourceContext: jules.SourceContext{
//	        Source: "sources/my-repo",
//	        GitHubRepoContext: &jules.GitHubRepoContext{StartingBranch: "main"},
//	    },
//	})
//
// # Pagination
//
// Every list call returns one page plus a continuation token. The Stream*
// methods walk all pages lazily, fetching the next page only when the
// previous one is consumed:
//
//	for session, err := range client.StreamSessions(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(session.Name, session.State)
//	}
//
// Breaking out of the loop stops all further fetching. For explicit control
// use a Pager and its Next method, which returns Done at exhaustion.
//
// # Errors
//
// Every failure is classified into a closed taxonomy so callers can branch
// on the remediation path:
//
//	_, err := client.GetSession(ctx, name)
//	switch {
//	case jules.IsNotFound(err):
//	    // resource does not exist
//	case jules.IsAuth(err):
//	    // fix the credential
//	case jules.IsRetryable(err):
//	    // server or network trouble, try again later
//	}
//
// The client itself never retries, never falls back, and never returns
// partial results: a call yields either a decoded value or exactly one
// classified error.
package jules
