package trialcalc

import "time"

// CalculationMetrics 计算统计
type CalculationMetrics struct {
	Executions int64 `json:"executions"` // Execute 调用次数
	Computed   int64 `json:"computed"`   // 产生结果的次数
	Ignored    int64 `json:"ignored"`    // 输入无效被忽略的次数
	Fallbacks  int64 `json:"fallbacks"`  // 分数输入按概率 0 处理的次数

	// 时间戳
	StartTime      int64 `json:"start_time"`       // 开始时间
	LastUpdateTime int64 `json:"last_update_time"` // 最后更新时间
}

// SuccessRate returns the share of executions that produced a result, in percent
func (m CalculationMetrics) SuccessRate() float64 {
	if m.Executions == 0 {
		return 0.0
	}
	return float64(m.Computed) / float64(m.Executions) * 100.0
}

// CalculationMonitor 计算监控器
type CalculationMonitor struct {
	metrics CalculationMetrics
	enabled bool
}

// NewCalculationMonitor 创建新的计算监控器
func NewCalculationMonitor() *CalculationMonitor {
	m := &CalculationMonitor{enabled: true}
	m.Reset()
	return m
}

// Enable 启用监控
func (m *CalculationMonitor) Enable() { m.enabled = true }

// Disable 禁用监控
func (m *CalculationMonitor) Disable() { m.enabled = false }

// IsEnabled 检查是否启用了监控
func (m *CalculationMonitor) IsEnabled() bool { return m.enabled }

// RecordExecution 记录一次 Execute 调用
func (m *CalculationMonitor) RecordExecution() {
	m.record(&m.metrics.Executions)
}

// RecordComputed 记录一次成功计算
func (m *CalculationMonitor) RecordComputed() {
	m.record(&m.metrics.Computed)
}

// RecordIgnored 记录一次被忽略的执行
func (m *CalculationMonitor) RecordIgnored() {
	m.record(&m.metrics.Ignored)
}

// RecordFallback 记录一次分数回退
func (m *CalculationMonitor) RecordFallback() {
	m.record(&m.metrics.Fallbacks)
}

func (m *CalculationMonitor) record(counter *int64) {
	if !m.enabled {
		return
	}
	*counter++
	m.metrics.LastUpdateTime = time.Now().UnixNano()
}

// GetMetrics 获取统计副本
func (m *CalculationMonitor) GetMetrics() CalculationMetrics { return m.metrics }

// Reset 重置统计
func (m *CalculationMonitor) Reset() {
	now := time.Now().UnixNano()
	m.metrics = CalculationMetrics{StartTime: now, LastUpdateTime: now}
}
