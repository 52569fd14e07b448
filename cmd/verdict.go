package main

import (
	"github.com/luca-patrignani/showdown/domain/poker"
)

type verdict struct {
	deal deal
	poker.Showdown
	reference *referenceVerdict
}

type referenceVerdict struct {
	outcome poker.Outcome
	left    string
	right   string
}

// disagrees reports whether the reference evaluator picked another winner.
func (v verdict) disagrees() bool {
	return v.reference != nil && v.reference.outcome != v.Outcome
}

func judge(d deal, rules poker.RuleSet, withReference bool) (verdict, error) {
	v := verdict{
		deal:     d,
		Showdown: poker.Evaluate(d.left, d.right, rules),
	}
	if !withReference {
		return v, nil
	}
	outcome, err := poker.ReferenceDecide(d.left, d.right)
	if err != nil {
		return verdict{}, err
	}
	left, err := poker.DescribeHand(d.left)
	if err != nil {
		return verdict{}, err
	}
	right, err := poker.DescribeHand(d.right)
	if err != nil {
		return verdict{}, err
	}
	v.reference = &referenceVerdict{outcome: outcome, left: left, right: right}
	return v, nil
}
