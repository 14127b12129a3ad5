package scheduler

import "testing"

func TestValidateConfig_RejectsNonPositiveWorkers(t *testing.T) {
	c := defaultConfig()
	c.Workers = 0
	if err := validateConfig(&c); err != ErrInvalidWorkerCount {
		t.Fatalf("got %v want ErrInvalidWorkerCount", err)
	}
}

func TestValidateConfig_RejectsNegativeQueueCapacity(t *testing.T) {
	c := defaultConfig()
	c.QueueCapacity = -1
	if err := validateConfig(&c); err != ErrInvalidQueueCapacity {
		t.Fatalf("got %v want ErrInvalidQueueCapacity", err)
	}
}

func TestValidateConfig_FillsMissingDefaults(t *testing.T) {
	c := Config{Workers: 2}
	if err := validateConfig(&c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Metrics == nil {
		t.Fatalf("expected a default Metrics provider to be filled in")
	}
	if c.SlotPoolCapacity == 0 {
		t.Fatalf("expected a default SlotPoolCapacity to be filled in")
	}
}

func TestOptions_OverrideDefaults(t *testing.T) {
	c := defaultConfig()
	WithWorkers(3)(&c)
	WithQueueCapacity(10)(&c)
	WithDynamicSlotPool()(&c)

	if c.Workers != 3 || c.QueueCapacity != 10 || !c.DynamicSlotPool {
		t.Fatalf("unexpected config after options: %+v", c)
	}
}
