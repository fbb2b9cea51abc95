// Package param holds the table of Gurobi parameters known to the binding,
// together with the value kind each of them expects.
//
// The table follows the Gurobi 11 parameter reference and has to be kept in
// sync with the linked library when it is upgraded.
package param

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind is the value kind of a parameter.
type Kind int

const (
	Int Kind = iota
	Double
	String
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknown is returned for parameter names missing from the table.
	ErrUnknown = errors.New("unknown parameter")
	// ErrValue is returned when a value does not fit the parameter's kind.
	ErrValue = errors.New("invalid parameter value")
)

var table = map[string]Kind{
	// termination
	"BarIterLimit":   Int,
	"BestBdStop":     Double,
	"BestObjStop":    Double,
	"Cutoff":         Double,
	"IterationLimit": Double,
	"MemLimit":       Double,
	"NodeLimit":      Double,
	"SoftMemLimit":   Double,
	"SolutionLimit":  Int,
	"TimeLimit":      Double,
	"WorkLimit":      Double,

	// tolerances
	"BarConvTol":     Double,
	"BarQCPConvTol":  Double,
	"FeasibilityTol": Double,
	"IntFeasTol":     Double,
	"MarkowitzTol":   Double,
	"MIPGap":         Double,
	"MIPGapAbs":      Double,
	"OptimalityTol":  Double,
	"PSDTol":         Double,

	// simplex
	"InfUnbdInfo":    Int,
	"LPWarmStart":    Int,
	"NetworkAlg":     Int,
	"NormAdjust":     Int,
	"ObjScale":       Double,
	"PerturbValue":   Double,
	"Quad":           Int,
	"ScaleFlag":      Int,
	"Sifting":        Int,
	"SiftMethod":     Int,
	"SimplexPricing": Int,

	// barrier
	"BarCorrectors":  Int,
	"BarHomogeneous": Int,
	"BarOrder":       Int,
	"Crossover":      Int,
	"CrossoverBasis": Int,
	"QCPDual":        Int,

	// MIP
	"BranchDir":          Int,
	"ConcurrentJobs":     Int,
	"ConcurrentMIP":      Int,
	"DegenMoves":         Int,
	"Disconnected":       Int,
	"DistributedMIPJobs": Int,
	"Heuristics":         Double,
	"ImproveStartGap":    Double,
	"ImproveStartNodes":  Double,
	"ImproveStartTime":   Double,
	"IntegralityFocus":   Int,
	"LazyConstraints":    Int,
	"MinRelNodes":        Int,
	"MIPFocus":           Int,
	"MIQCPMethod":        Int,
	"NodefileDir":        String,
	"NodefileStart":      Double,
	"NodeMethod":         Int,
	"NonConvex":          Int,
	"NoRelHeurTime":      Double,
	"NoRelHeurWork":      Double,
	"OBBT":               Int,
	"PartitionPlace":     Int,
	"PumpPasses":         Int,
	"RINS":               Int,
	"SolFiles":           String,
	"SolutionNumber":     Int,
	"StartNodeLimit":     Int,
	"StartNumber":        Int,
	"SubMIPNodes":        Int,
	"Symmetry":           Int,
	"VarBranch":          Int,
	"ZeroObjNodes":       Int,

	// presolve
	"AggFill":        Int,
	"Aggregate":      Int,
	"DualReductions": Int,
	"PreCrush":       Int,
	"PreDepRow":      Int,
	"PreDual":        Int,
	"PreMIQCPForm":   Int,
	"PrePasses":      Int,
	"PreQLinearize":  Int,
	"Presolve":       Int,
	"PreSOS1BigM":    Double,
	"PreSOS2BigM":    Double,
	"PreSparsify":    Int,

	// cuts
	"BQPCuts":         Int,
	"CliqueCuts":      Int,
	"CoverCuts":       Int,
	"CutAggPasses":    Int,
	"CutPasses":       Int,
	"Cuts":            Int,
	"FlowCoverCuts":   Int,
	"FlowPathCuts":    Int,
	"GomoryPasses":    Int,
	"GUBCoverCuts":    Int,
	"ImpliedCuts":     Int,
	"InfProofCuts":    Int,
	"LiftProjectCuts": Int,
	"MIPSepCuts":      Int,
	"MIRCuts":         Int,
	"ModKCuts":        Int,
	"NetworkCuts":     Int,
	"ProjImpliedCuts": Int,
	"PSDCuts":         Int,
	"RelaxLiftCuts":   Int,
	"RLTCuts":         Int,
	"StrongCGCuts":    Int,
	"SubMIPCuts":      Int,
	"ZeroHalfCuts":    Int,

	// tuning
	"TuneCriterion": Int,
	"TuneJobs":      Int,
	"TuneOutput":    Int,
	"TuneResults":   Int,
	"TuneTimeLimit": Double,
	"TuneTrials":    Int,

	// solution pool
	"PoolGap":        Double,
	"PoolGapAbs":     Double,
	"PoolSearchMode": Int,
	"PoolSolutions":  Int,

	// general functions
	"FuncMaxVal":      Double,
	"FuncPieceError":  Double,
	"FuncPieceLength": Double,
	"FuncPieceRatio":  Double,
	"FuncPieces":      Int,

	// logging
	"DisplayInterval": Int,
	"LogFile":         String,
	"LogToConsole":    Int,
	"OutputFlag":      Int,

	// distributed and cloud
	"ComputeServer":  String,
	"CSManager":      String,
	"CloudAccessID":  String,
	"CloudSecretKey": String,
	"CloudPool":      String,
	"ServerPassword": String,
	"TokenServer":    String,
	"WorkerPassword": String,
	"WorkerPool":     String,

	// other
	"FeasRelaxBigM": Double,
	"IgnoreNames":   Int,
	"IISMethod":     Int,
	"JSONSolDetail": Int,
	"Method":        Int,
	"NumericFocus":  Int,
	"ObjNumber":     Int,
	"Record":        Int,
	"ResultFile":    String,
	"Seed":          Int,
	"Threads":       Int,
	"UpdateMode":    Int,
}

// Lookup resolves name to its canonical spelling and kind.
//
// Names are matched exactly, except for "timelimit" and any casing of
// "logfile".
func Lookup(name string) (string, Kind, error) {
	switch {
	case name == "timelimit":
		name = "TimeLimit"
	case strings.EqualFold(name, "logfile"):
		name = "LogFile"
	}

	kind, ok := table[name]
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknown, name)
	}

	return name, kind, nil
}

// Names returns the canonical names of all known parameters, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Coerce converts value to the Go type used for kind: int, float64 or
// string.
func Coerce(kind Kind, value interface{}) (interface{}, error) {
	switch kind {
	case Int:
		switch v := value.(type) {
		case int:
			return int32Value(int64(v), value, kind)
		case int8:
			return int(v), nil
		case int16:
			return int(v), nil
		case int32:
			return int(v), nil
		case int64:
			return int32Value(v, value, kind)
		case uint:
			if uint64(v) > math.MaxInt32 {
				break
			}
			return int(v), nil
		case uint8:
			return int(v), nil
		case uint16:
			return int(v), nil
		case uint32:
			if v > math.MaxInt32 {
				break
			}
			return int(v), nil
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		}
	case Double:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case String:
		if v, ok := value.(string); ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %T for %s parameter", ErrValue, value, kind)
}

// int32Value narrows v to the C int the Gurobi API takes.
func int32Value(v int64, value interface{}, kind Kind) (interface{}, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %v overflows %s parameter", ErrValue, value, kind)
	}
	return int(v), nil
}

// Parse reads raw as a value of the given kind.
func Parse(kind Kind, raw string) (interface{}, error) {
	switch kind {
	case Int:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %q overflows int parameter", ErrValue, raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrValue, raw)
		}
		return int(v), nil
	case Double:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrValue, raw)
		}
		return v, nil
	case String:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrValue, kind)
	}
}
