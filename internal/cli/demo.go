package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"patternd/internal/agent"
	"patternd/internal/house"
	"patternd/internal/observer"
	"patternd/internal/proxy"
	"patternd/internal/seq"
)

func newDemoCmd(g *globalFlags) *cobra.Command {
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run one of the pattern walkthroughs and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("demo requires a subcommand: observer|state|house|range|proxy")
		},
	}

	demoObserver := &cobra.Command{
		Use:     "observer",
		Short:   "Subscribe three observers, broadcast, unsubscribe one, broadcast again",
		Example: "  patternd demo observer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObserverDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}

	demoState := &cobra.Command{
		Use:     "state",
		Short:   "Ask the agent to think, swap its mood, ask again",
		Example: "  patternd demo state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStateDemo(cmd.OutOrStdout())
		},
	}

	demoHouse := &cobra.Command{
		Use:     "house",
		Short:   "Turn the house systems on and off",
		Example: "  patternd demo house --log-format console",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			h, err := house.New(house.Config{PowerW: cfg.House.PowerW, PressurePSI: cfg.House.PressurePSI},
				g.logger(cmd.ErrOrStderr(), cfg))
			if err != nil {
				return err
			}
			return runHouseDemo(h, cmd.OutOrStdout())
		},
	}

	var start, end, step int
	demoRange := &cobra.Command{
		Use:     "range",
		Short:   "Print a stepped integer range",
		Example: "  patternd demo range --start 0 --end 100 --step 5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seq.Range(start, end, step)
			if err != nil {
				return err
			}
			for v := range s {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	demoRange.Flags().IntVar(&start, "start", 0, "Exclusive lower bound")
	demoRange.Flags().IntVar(&end, "end", 100, "Iteration stops once a value reaches this bound")
	demoRange.Flags().IntVar(&step, "step", 5, "Increment (must be positive)")

	demoProxy := &cobra.Command{
		Use:     "proxy",
		Short:   "Read and write a person record through a validating proxy",
		Example: "  patternd demo proxy --log-format console",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			return runProxyDemo(g.logger(cmd.ErrOrStderr(), cfg), cmd.OutOrStdout())
		},
	}

	demo.AddCommand(demoObserver, demoState, demoHouse, demoRange, demoProxy)
	return demo
}

// printer is a comparable observer so it can be removed with Unsubscribe.
type printer struct {
	w    io.Writer
	mark string
}

func (p *printer) OnNotify(_ context.Context, v string) error {
	_, err := fmt.Fprintln(p.w, v+" "+p.mark)
	return err
}

func runObserverDemo(ctx context.Context, w io.Writer) error {
	n := observer.New[string]()
	obs1 := &printer{w: w, mark: "👹"}
	obs2 := &printer{w: w, mark: "👺"}
	obs3 := &printer{w: w, mark: "👻"}
	for _, o := range []*printer{obs1, obs2, obs3} {
		if _, err := n.Subscribe(o); err != nil {
			return err
		}
	}
	if err := n.Notify(ctx, "Hello"); err != nil {
		return err
	}
	if _, err := n.Unsubscribe(obs2); err != nil {
		return err
	}
	return n.Notify(ctx, "World")
}

func runStateDemo(w io.Writer) error {
	a, err := agent.New()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.Think())
	if err := a.ChangeState(agent.MoodSad); err != nil {
		return err
	}
	fmt.Fprintln(w, a.Think())
	return nil
}

// runProxyDemo prints one line per access; rejected writes are reported, not returned.
func runProxyDemo(log zerolog.Logger, w io.Writer) error {
	person, err := proxy.New(proxy.NewRecord(map[string]any{
		"name":        "Yiannis Doe",
		"age":         30,
		"nationality": "Greek",
	}), log)
	if err != nil {
		return err
	}
	name, err := person.Get("name")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "name is %v\n", name)
	for _, step := range []struct {
		prop  string
		value any
	}{{"age", 31}, {"name", "jo"}} {
		if err := person.Set(step.prop, step.value); err != nil {
			fmt.Fprintf(w, "set %s rejected: %v\n", step.prop, err)
			continue
		}
		fmt.Fprintf(w, "%s set to %v\n", step.prop, step.value)
	}
	if _, err := person.Get("email"); err != nil {
		fmt.Fprintf(w, "get email rejected: %v\n", err)
	}
	return nil
}

type writerPublisher struct{ w io.Writer }

func (p writerPublisher) Publish(msg string) { fmt.Fprintln(p.w, msg) }

func runHouseDemo(h *house.House, w io.Writer) error {
	h.SetPublisher(writerPublisher{w: w})
	h.TurnOnSystems()
	h.TurnOffSystems()
	return nil
}
