package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"airline-ops/seatcrew/internal/api"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/seating"
	"airline-ops/seatcrew/internal/services"
)

type planOutput struct {
	Capacity int            `json:"capacity"`
	Cabins   seating.Plan   `json:"cabins"`
	Seats    []seating.Seat `json:"seats"`
}

func newPlanCmd(connect connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect seating plans",
	}

	var file string
	expand := &cobra.Command{
		Use:   "expand",
		Short: "Expand a seating plan JSON document into seat ids (reads stdin without --file)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if file == "" || file == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}

			plan, err := seating.ParsePlan(raw)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), planOutput{
				Capacity: plan.Capacity(),
				Cabins:   plan,
				Seats:    plan.Expand(),
			})
		},
	}
	expand.Flags().StringVarP(&file, "file", "f", "", "Seating plan file")

	show := &cobra.Command{
		Use:   "show <flight-number>",
		Short: "Print the seat map of a flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, connect, func(deps *api.Dependencies) (any, error) {
				return deps.Services.Seats.SeatMap(cmd.Context(), args[0])
			})
		},
	}

	cmd.AddCommand(expand, show)
	return cmd
}

func newAutoAssignCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "auto-assign <flight-number>",
		Short: "Seat every unseated passenger whose class has a free seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, connect, func(deps *api.Dependencies) (any, error) {
				res, err := deps.Services.Seats.AutoAssign(cmd.Context(), args[0])
				if err != nil {
					return nil, err
				}
				msg := constants.MsgSeatsAssigned(res.Assigned)
				if res.NothingToDo() {
					msg = constants.MsgAllPassengersSeated
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				return res, nil
			})
		},
	}
}

func newAssignCmd(connect connector) *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "assign <flight-number> <passenger-id> <seat>",
		Short: "Put one passenger in one seat",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			passengerID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid passenger id %q", args[1])
			}
			return withDeps(cmd, connect, func(deps *api.Dependencies) (any, error) {
				return deps.Services.Seats.AssignSeat(cmd.Context(), services.ManualAssignment{
					FlightNumber:       args[0],
					PassengerID:        passengerID,
					SeatNumber:         args[2],
					SkipPlanValidation: !validate,
				})
			})
		},
	}
	cmd.Flags().BoolVar(&validate, "validate", false, "Reject seats the aircraft's plan does not contain")
	return cmd
}

func newCrewCmd(connect connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Read or replace a flight's crew roster",
	}

	show := &cobra.Command{
		Use:   "show <flight-number>",
		Short: "Print the crew roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, connect, func(deps *api.Dependencies) (any, error) {
				return deps.Services.Crew.GetCrew(cmd.Context(), args[0])
			})
		},
	}

	var pilots, cabinCrew []int64
	set := &cobra.Command{
		Use:   "set <flight-number>",
		Short: "Replace the crew roster with exactly the given ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, connect, func(deps *api.Dependencies) (any, error) {
				return deps.Services.Crew.SaveCrew(cmd.Context(), args[0], pilots, cabinCrew)
			})
		},
	}
	set.Flags().Int64SliceVar(&pilots, "pilots", nil, "Pilot ids, comma separated")
	set.Flags().Int64SliceVar(&cabinCrew, "cabin-crew", nil, "Cabin crew ids, comma separated")

	cmd.AddCommand(show, set)
	return cmd
}
