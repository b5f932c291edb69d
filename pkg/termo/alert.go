package termo

import (
	"time"

	"go.uber.org/zap"
	"termotrack/pkg/civil"
	"termotrack/pkg/common"
)

// classify recomputes the dashboard flags from scratch on every call:
// "now" advances continuously, so yesterday's late thermometer clears
// itself at the day boundary with no cache to invalidate.
func (i *Termo) classify(thermometerIDs []uint, now time.Time) (DashboardAlerts, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTermoCore,
		zap.String(common.LoggerFieldTermoCategory, common.LoggerCategoryTermoAlert),
	)

	startUTC, endUTC := civil.DayBounds(now, i.Zone)

	alerts := DashboardAlerts{Late: []uint{}, Incomplete: []uint{}}
	for _, id := range thermometerIDs {
		verifications, err := i.Store.FindInRange(id, startUTC, endUTC)
		if err != nil {
			return DashboardAlerts{}, err
		}

		switch {
		case len(verifications) == 0:
			alerts.Late = append(alerts.Late, id)
		case !verifications[0].Complete():
			alerts.Incomplete = append(alerts.Incomplete, id)
		}
	}

	logger.Info("Classified thermometers for today",
		zap.Int("checked", len(thermometerIDs)),
		zap.Uints("late", alerts.Late),
		zap.Uints("incomplete", alerts.Incomplete))

	return alerts, nil
}

type IAlertImpl struct {
	termo *Termo
}

func (ia *IAlertImpl) Classify(thermometerIDs []uint, now time.Time) (DashboardAlerts, error) {
	return ia.termo.classify(thermometerIDs, now)
}

func (i *Termo) GetIAlert() IAlert {
	return &IAlertImpl{termo: i}
}
