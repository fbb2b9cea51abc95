package gurobi

type Option func(*Model) error

// WithLogger redirects the solver's log to logger, instead of discarding
// it.
func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		if err := m.SetParameter("OutputFlag", 1); err != nil {
			return err
		}
		if err := m.SetParameter("LogToConsole", 0); err != nil {
			return err
		}

		m.state.logger = logger

		return nil
	}
}

// WithParameter sets a solver parameter on creation, see SetParameter.
func WithParameter(name string, value interface{}) Option {
	return func(m *Model) error {
		return m.SetParameter(name, value)
	}
}
