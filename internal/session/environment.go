package session

// Environment classifies the running process. Read-only after boot.
type Environment int

const (
	// EnvBrowser is the interactive client process with durable local storage.
	EnvBrowser Environment = iota
	// EnvServer is the server-side shell renderer. Storage writes are no-ops
	// and credentials come from inbound request cookies.
	EnvServer
)

func (e Environment) String() string {
	if e == EnvServer {
		return "SERVER"
	}
	return "BROWSER"
}

// ExecutionContext carries the environment classification and, under
// [EnvServer], the cookies of the inbound request being rendered.
type ExecutionContext struct {
	Env            Environment
	RequestCookies map[string]string
}

// BrowserContext returns the execution context of the interactive client.
func BrowserContext() ExecutionContext {
	return ExecutionContext{Env: EnvBrowser}
}

// ServerContext returns a server execution context with the given inbound
// request cookies. A nil map means no cookies were provided by the host.
func ServerContext(cookies map[string]string) ExecutionContext {
	return ExecutionContext{Env: EnvServer, RequestCookies: cookies}
}

// IsBrowser reports whether the context is the interactive client.
func (c ExecutionContext) IsBrowser() bool {
	return c.Env == EnvBrowser
}
