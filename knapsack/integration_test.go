package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knapsack/knapsack"
)

// CrossCheckSuite solves the same seeded random instances with every method
// and checks them against the brute-force oracle.
type CrossCheckSuite struct {
	suite.Suite
	instances []knapsack.Instance
}

func (s *CrossCheckSuite) SetupSuite() {
	rng := rand.New(rand.NewSource(seedDet))
	s.instances = make([]knapsack.Instance, 200)
	for i := range s.instances {
		s.instances[i] = randomInstance(rng, i)
	}
}

func (s *CrossCheckSuite) solve(inst knapsack.Instance, m knapsack.Method) knapsack.Result {
	opts := knapsack.DefaultOptions()
	opts.Method = m
	opts.Seed = knapsack.DeriveSeed(seedDet, uint64(inst.ID))

	res, err := knapsack.Solve(inst, opts)
	s.Require().NoError(err, "instance %d method %v", inst.ID, m)
	s.Require().NoError(knapsack.ValidateCombination(res.Combination, inst.Items, inst.Capacity))
	s.Require().Equal(res.Combination.Cost(inst.Items), res.Cost)

	return res
}

func (s *CrossCheckSuite) TestExactMethodsMatchOracle() {
	for _, inst := range s.instances {
		oracle := s.solve(inst, knapsack.MethodBruteForce)
		s.Equal(oracle.Cost, s.solve(inst, knapsack.MethodDynamic).Cost, "instance %d", inst.ID)
		for _, p := range policies {
			opts := knapsack.DefaultOptions()
			opts.Method = knapsack.MethodBranchAndBound
			opts.Frontier = p
			res, err := knapsack.Solve(inst, opts)
			s.Require().NoError(err)
			s.Equal(oracle.Cost, res.Cost, "instance %d policy %v", inst.ID, p)
		}
	}
}

func (s *CrossCheckSuite) TestApproximateMethodsBoundedByOracle() {
	for _, inst := range s.instances {
		oracle := s.solve(inst, knapsack.MethodBruteForce)
		for _, m := range []knapsack.Method{knapsack.MethodRatioGreedy, knapsack.MethodFPTAS, knapsack.MethodAnnealing} {
			s.LessOrEqual(s.solve(inst, m).Cost, oracle.Cost, "instance %d method %v", inst.ID, m)
		}
	}
}

func TestCrossCheckSuite(t *testing.T) {
	suite.Run(t, new(CrossCheckSuite))
}
