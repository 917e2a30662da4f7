/*
 * Copyright (c) 2026, Vocalia Inc. (https://vocalia.io).
 *
 * Vocalia Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package schedulers

import (
	"github.com/robfig/cron/v3"

	harmonizerprovider "github.com/vocalia/customer-feedback-service/internal/harmonizer/provider"
	questionstore "github.com/vocalia/customer-feedback-service/internal/questions/store"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// DefaultSweepSchedule runs the sweep hourly unless configured otherwise.
const DefaultSweepSchedule = "@hourly"

// StartConflictSweep schedules a periodic scan of every active rule for
// unresolved frequency conflicts, surfacing them in the logs so operators
// notice pairs that still need a harmonizer. Returns the started scheduler so
// callers can stop it on shutdown.
func StartConflictSweep(schedule string) (*cron.Cron, error) {

	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, sweepConflicts); err != nil {
		return nil, err
	}
	scheduler.Start()

	log.GetLogger().Info("Conflict sweep scheduled", log.String("schedule", schedule))
	return scheduler, nil
}

// sweepConflicts walks every rule that still has active questions and logs the
// unresolved conflict count per rule.
func sweepConflicts() {

	logger := log.GetLogger()
	rules, err := questionstore.GetActiveRules()
	if err != nil {
		logger.Error("Conflict sweep failed to list active rules", log.Error(err))
		return
	}

	harmonizerService := harmonizerprovider.NewHarmonizerProvider().GetHarmonizerService()
	for _, rule := range rules {
		conflicts, err := harmonizerService.DetectConflicts(rule.BusinessID, rule.RuleID)
		if err != nil {
			logger.Error("Conflict sweep failed for rule",
				log.String("business_id", rule.BusinessID),
				log.String("rule_id", rule.RuleID),
				log.Error(err))
			continue
		}

		unresolved := 0
		for _, conflict := range conflicts {
			if !conflict.Resolved {
				unresolved++
			}
		}
		if unresolved > 0 {
			logger.Warn("Rule has unresolved frequency conflicts",
				log.String("business_id", rule.BusinessID),
				log.String("rule_id", rule.RuleID),
				log.Int("unresolved", unresolved),
				log.Int("total", len(conflicts)))
		}

		logger.Audit(log.AuditEvent{
			InitiatorID:   "system",
			InitiatorType: log.InitiatorTypeSystem,
			TargetID:      rule.RuleID,
			TargetType:    log.TargetTypeRule,
			ActionID:      log.ActionConflictSweep,
		})
	}
}
